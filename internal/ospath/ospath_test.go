package ospath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealAbsResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	got, err := RealAbs(link)
	require.NoError(t, err)

	wantReal, err := RealAbs(target)
	require.NoError(t, err)
	assert.Equal(t, wantReal, got)
}

func TestRealAbsBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nope"), link))

	_, err := RealAbs(link)
	assert.Error(t, err)
}

func TestIsDirAndIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.True(t, IsRegularFile(file))
	assert.False(t, IsRegularFile(dir))
	assert.False(t, IsRegularFile(filepath.Join(dir, "missing")))
}
