package hostinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOSRelease(t *testing.T) {
	input := `
# generated by the distro
NAME="Ubuntu"
ID=ubuntu
ID_LIKE=debian
VERSION_ID="22.04"
PRETTY_NAME='Ubuntu 22.04 LTS'
BROKENLINE
`
	rel := parseOSRelease(strings.NewReader(input))
	assert.Equal(t, "ubuntu", rel.ID)
	assert.Equal(t, "22.04", rel.VersionID)
	assert.Equal(t, []string{"debian"}, rel.IDLike)
}

func TestParseOSReleaseMultiValueIDLike(t *testing.T) {
	rel := parseOSRelease(strings.NewReader(`ID=linuxmint
ID_LIKE="ubuntu debian"`))
	assert.Equal(t, []string{"ubuntu", "debian"}, rel.IDLike)
}

func TestParseOSReleaseEmpty(t *testing.T) {
	rel := parseOSRelease(strings.NewReader(""))
	assert.Equal(t, osRelease{}, rel)
}

func TestReadOSReleaseMissingFile(t *testing.T) {
	rel := readOSRelease(t.TempDir() + "/nope/os-release")
	assert.Equal(t, osRelease{}, rel)
}
