// Package hostinfo assembles the immutable HostProfile snapshot that
// option resolution runs against.
package hostinfo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mkdrive-dev/mkdrive/internal/localexec"
	"github.com/mkdrive-dev/mkdrive/internal/ospath"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

const initBinarySuffix = "/lib/systemd/systemd"

// PathResolutionError indicates a host path that had to resolve but didn't.
type PathResolutionError struct {
	Path string
	Err  error
}

func (e PathResolutionError) Error() string {
	return fmt.Sprintf("resolving %s: %v", e.Path, e.Err)
}

func (e PathResolutionError) Unwrap() error {
	return e.Err
}

// Prober reads host facts. All filesystem probes are relative to Root so
// tests can point it at a fixture tree; production uses "/".
type Prober struct {
	// Root is the filesystem root to probe under.
	Root string

	// Execer runs the multiarch query tool.
	Execer localexec.Execer

	// Strict makes a missing init-script directory a fatal
	// PathResolutionError instead of an empty field.
	Strict bool
}

func NewProber(root string, execer localexec.Execer) *Prober {
	return &Prober{Root: root, Execer: execer}
}

// Probe builds the full HostProfile. Everything is gathered up front;
// nothing is re-read during option resolution.
func (p *Prober) Probe(ctx context.Context) (model.HostProfile, error) {
	rel := readOSRelease(filepath.Join(p.Root, "etc/os-release"))

	sysvinit, rootPrefix, err := p.DetectInitLayout()
	if err != nil {
		return model.HostProfile{}, err
	}

	profile := model.HostProfile{
		DistroID:        rel.ID,
		DistroVersionID: rel.VersionID,
		DistroIDLike:    rel.IDLike,
		SysvinitPath:    sysvinit,
		RootPrefix:      rootPrefix,
		HasBpftool:      p.hasBpftool(),
	}

	// Only debian-like hosts carry the multiarch query tool; skip the
	// exec everywhere else.
	if profile.IsDebianLike() {
		profile.MultiarchTriplet = p.multiarchTriplet(ctx)
	}

	return profile, nil
}

// DetectInitLayout resolves the init-script directory and the
// distribution root prefix.
//
// The init binary lookup always degrades to an empty prefix: minimal and
// containerized images routinely lack /sbin/init. The init-script
// directory follows the same policy unless Strict is set.
func (p *Prober) DetectInitLayout() (sysvinitPath, rootPrefix string, err error) {
	initd := filepath.Join(p.Root, "etc/init.d")
	sysvinitPath, resolveErr := ospath.RealAbs(initd)
	if resolveErr != nil {
		if p.Strict {
			return "", "", PathResolutionError{Path: initd, Err: resolveErr}
		}
		sysvinitPath = ""
	}

	return sysvinitPath, p.rootPrefix(), nil
}

func (p *Prober) rootPrefix() string {
	real, err := ospath.RealAbs(filepath.Join(p.Root, "sbin/init"))
	if err != nil {
		// Absent binary or broken symlink: no root-prefix override.
		return ""
	}

	prefix := strings.TrimSuffix(real, initBinarySuffix)
	return filepath.Clean("/" + strings.TrimPrefix(prefix, "/"))
}

func (p *Prober) multiarchTriplet(ctx context.Context) string {
	cmd := model.NewCmd("dpkg-architecture", "-qDEB_HOST_MULTIARCH")
	r, err := localexec.OneShot(ctx, p.Execer, cmd)
	if err != nil || r.ExitCode != 0 {
		// Tool availability is a guard, not an error.
		return ""
	}
	return strings.TrimSpace(string(r.Stdout))
}

func (p *Prober) hasBpftool() bool {
	matches, err := filepath.Glob(filepath.Join(p.Root, "usr/lib/linux-tools/*/bpftool"))
	return err == nil && len(matches) > 0
}
