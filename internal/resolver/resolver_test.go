package resolver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkdrive-dev/mkdrive/internal/config"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

func TestResolveBuildRoot(t *testing.T) {
	assert.Equal(t, "/src/build", ResolveBuildRoot("", "/src"))
	assert.Equal(t, "/elsewhere", ResolveBuildRoot("/elsewhere", "/src"))
	assert.Equal(t, "/src/out", ResolveBuildRoot("out", "/src"))
	assert.Equal(t, "/work/build", ResolveBuildRoot("", "/work/sub/.."))
}

func TestNeedsConfigure(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, NeedsConfigure(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, MarkerFile), []byte("ninja"), 0o644))
	assert.False(t, NeedsConfigure(dir))
}

func TestNeedsConfigureMarkerIsAFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, MarkerFile), 0o755))
	assert.True(t, NeedsConfigure(dir))
}

func TestUnmatchedDistroGetsExactlyBaseSet(t *testing.T) {
	profile := model.HostProfile{DistroID: "arch"}
	cfg := config.FromEnviron(nil)

	base := model.NewOptionSet()
	appendBaseOptions(base, profile, cfg)

	full := BuildOptionSet(profile, cfg)

	if diff := cmp.Diff(base.Flags(), full.Flags()); diff != "" {
		t.Errorf("conditional appends fired for unmatched distro (-base +full):\n%s", diff)
	}
}

func TestBaseSetIsDeterministic(t *testing.T) {
	profile := model.HostProfile{DistroID: "arch"}
	cfg := config.FromEnviron(nil)

	a := BuildOptionSet(profile, cfg).Flags()
	b := BuildOptionSet(profile, cfg).Flags()
	assert.Equal(t, a, b)
	assert.Greater(t, len(a), 90)
}

func TestFedoraIDTable(t *testing.T) {
	profile := model.HostProfile{DistroID: "fedora", DistroVersionID: "39"}
	s := BuildOptionSet(profile, config.FromEnviron(nil))

	flags := s.Flags()
	want := []string{
		"-Dadm-gid=4",
		"-Daudio-gid=63",
		"-Dcdrom-gid=11",
		"-Ddialout-gid=18",
		"-Ddisk-gid=6",
		"-Dinput-gid=104",
		"-Dkmem-gid=9",
		"-Dkvm-gid=36",
		"-Dlp-gid=7",
		"-Drender-gid=105",
		"-Dsgx-gid=106",
		"-Dtape-gid=33",
		"-Dtty-gid=5",
		"-Dusers-gid=100",
		"-Dutmp-gid=22",
		"-Dvideo-gid=39",
		"-Dwheel-gid=10",
		"-Dsystemd-journal-gid=190",
		"-Dsystemd-network-uid=192",
		"-Dsystemd-resolve-uid=193",
		"-Dsystemd-timesync-uid=194",
	}
	// the pinning table is the tail of the option list, in fixed order
	require.GreaterOrEqual(t, len(flags), len(want))
	assert.Equal(t, want, flags[len(flags)-len(want):])
}

func TestUkifyLegacyDistro(t *testing.T) {
	cfg := config.FromEnviron(nil)

	get := func(profile model.HostProfile) string {
		v, ok := BuildOptionSet(profile, cfg).Get("ukify")
		require.True(t, ok)
		return v.MesonString()
	}

	assert.Equal(t, "false", get(model.HostProfile{DistroID: "centos", DistroVersionID: "8"}))
	assert.Equal(t, "true", get(model.HostProfile{DistroID: "centos", DistroVersionID: "9"}))
	assert.Equal(t, "true", get(model.HostProfile{DistroID: "fedora", DistroVersionID: "8"}))
	assert.Equal(t, "true", get(model.HostProfile{}))
}

func TestDebianMultiarchAppends(t *testing.T) {
	profile := model.HostProfile{
		DistroID:         "ubuntu",
		DistroIDLike:     []string{"debian"},
		MultiarchTriplet: "aarch64-linux-gnu",
	}
	cfg := config.FromEnviron(nil)

	base := model.NewOptionSet()
	appendBaseOptions(base, profile, cfg)
	full := BuildOptionSet(profile, cfg)

	assert.Equal(t, base.Len()+2, full.Len())

	v, ok := full.Get("rootlibdir")
	require.True(t, ok)
	assert.Equal(t, "/usr/lib/aarch64-linux-gnu", v.MesonString())

	v, ok = full.Get("pamlibdir")
	require.True(t, ok)
	assert.Equal(t, "/usr/lib/aarch64-linux-gnu/security", v.MesonString())
}

func TestDebianWithoutTripletSkipsAppends(t *testing.T) {
	profile := model.HostProfile{DistroID: "debian"}
	cfg := config.FromEnviron(nil)

	full := BuildOptionSet(profile, cfg)
	_, ok := full.Get("rootlibdir")
	assert.False(t, ok)
}

func TestOpenSUSEBpfCompiler(t *testing.T) {
	full := BuildOptionSet(model.HostProfile{DistroID: "opensuse-tumbleweed"}, config.FromEnviron(nil))
	v, ok := full.Get("bpf-compiler")
	require.True(t, ok)
	assert.Equal(t, "gcc", v.MesonString())

	full = BuildOptionSet(model.HostProfile{DistroID: "sles"}, config.FromEnviron(nil))
	_, ok = full.Get("bpf-compiler")
	assert.False(t, ok)
}

func TestDynamicEntries(t *testing.T) {
	profile := model.HostProfile{
		DistroID:     "arch",
		SysvinitPath: "/etc/init.d",
		RootPrefix:   "/usr",
	}
	cfg := config.FromEnviron([]string{
		"VERSION_TAG=v255-test",
		"SANITIZERS=address",
		"SLOW_TESTS=1",
	})

	flags := Finalize(BuildOptionSet(profile, cfg))
	joined := strings.Join(flags, "\n")
	assert.Contains(t, joined, "-Dsysvinit-path=/etc/init.d")
	assert.Contains(t, joined, "-Drootprefix=/usr")
	assert.Contains(t, joined, "-Dversion-tag=v255-test")
	assert.Contains(t, joined, "-Db_sanitize=address")
	assert.Contains(t, joined, "-Dslow-tests=true")
}

func TestGuardsAreIndependent(t *testing.T) {
	// a hypothetical host matching several guards fires all of them
	profile := model.HostProfile{
		DistroID:         "fedora",
		DistroIDLike:     []string{"debian"},
		MultiarchTriplet: "x86_64-linux-gnu",
	}
	full := BuildOptionSet(profile, config.FromEnviron(nil))

	_, hasLibdir := full.Get("rootlibdir")
	_, hasGid := full.Get("tty-gid")
	assert.True(t, hasLibdir)
	assert.True(t, hasGid)
}
