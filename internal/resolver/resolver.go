// Package resolver derives the generator option set from host facts.
//
// Resolution is deterministic: the same HostProfile and Config always
// produce the same ordered option list, so repeated generator
// invocations are reproducible.
package resolver

import (
	"path/filepath"

	"github.com/mkdrive-dev/mkdrive/internal/config"
	"github.com/mkdrive-dev/mkdrive/internal/ospath"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

// MarkerFile is the build-description artifact the generator leaves
// behind in a configured build directory.
const MarkerFile = "build.ninja"

// ResolveBuildRoot picks the build directory: the explicit override when
// set, else <cwd>/build. The result is always absolute and clean.
func ResolveBuildRoot(envOverride, cwd string) string {
	path := envOverride
	if path == "" {
		path = filepath.Join(cwd, "build")
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return filepath.Clean(path)
}

// NeedsConfigure reports whether the generator still has to run.
// A prior successful configure is never redone.
func NeedsConfigure(buildRoot string) bool {
	return !ospath.IsRegularFile(filepath.Join(buildRoot, MarkerFile))
}

// BuildOptionSet assembles the full option set: the fixed base table
// plus the dynamic host-derived entries, then the distro-conditional
// appends in fixed order. Guards are independent; in principle more
// than one may fire.
func BuildOptionSet(profile model.HostProfile, cfg config.Config) *model.OptionSet {
	s := model.NewOptionSet()
	appendBaseOptions(s, profile, cfg)
	appendDebianOptions(s, profile)
	appendFedoraOptions(s, profile)
	appendOpenSUSEOptions(s, profile)
	return s
}

// Finalize renders the accumulated set as generator command-line flags.
func Finalize(s *model.OptionSet) []string {
	return s.Flags()
}

// Debian-derived distributions install multiarch libraries under a
// triplet-qualified directory. The triplet comes from the packaging
// toolchain; when the tool was absent the guard simply does not fire.
func appendDebianOptions(s *model.OptionSet, profile model.HostProfile) {
	if !profile.IsDebianLike() || profile.MultiarchTriplet == "" {
		return
	}

	libdir := filepath.Join("/usr/lib", profile.MultiarchTriplet)
	s.Append("rootlibdir", model.StringValue(libdir))
	s.Append("pamlibdir", model.StringValue(filepath.Join(libdir, "security")))
}

func appendOpenSUSEOptions(s *model.OptionSet, profile model.HostProfile) {
	if !profile.IsOpenSUSE() {
		return
	}

	// openSUSE ships a clang without BPF target support.
	s.Append("bpf-compiler", model.StringValue("gcc"))
}
