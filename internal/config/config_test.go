package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvironDefaults(t *testing.T) {
	c := FromEnviron(nil)

	assert.Equal(t, "", c.BuildDir)
	assert.Equal(t, SanitizerNone, c.Sanitizers)
	assert.False(t, c.SlowTests)
	assert.False(t, c.WithTests)
	assert.False(t, c.SanitizersActive())
}

func TestFromEnviron(t *testing.T) {
	c := FromEnviron([]string{
		"BUILDDIR=/work/build",
		"VERSION_TAG=v255-devel",
		"SANITIZERS=address,undefined",
		"SLOW_TESTS=1",
		"WITH_TESTS=true",
		"DESTDIR=/work/dest",
		"MKOSI_ASAN_OPTIONS=strict_string_checks=1",
		"MKOSI_UBSAN_OPTIONS=print_stacktrace=1",
		"IRRELEVANT",
	})

	assert.Equal(t, "/work/build", c.BuildDir)
	assert.Equal(t, "v255-devel", c.VersionTag)
	assert.True(t, c.SlowTests)
	assert.True(t, c.WithTests)
	assert.True(t, c.SanitizersActive())
	assert.Equal(t, "strict_string_checks=1", c.AsanOptions)
	assert.Equal(t, "print_stacktrace=1", c.UbsanOptions)
}

func TestSanitizerNoneSentinel(t *testing.T) {
	c := FromEnviron([]string{"SANITIZERS=none"})
	assert.False(t, c.SanitizersActive())
}

func TestLaterEntriesWin(t *testing.T) {
	c := FromEnviron([]string{"BUILDDIR=/a", "BUILDDIR=/b"})
	assert.Equal(t, "/b", c.BuildDir)
}

func TestTruthySpellings(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "on"} {
		assert.True(t, FromEnviron([]string{"SLOW_TESTS=" + v}).SlowTests, v)
	}
	for _, v := range []string{"", "0", "false", "no", "off", "maybe"} {
		assert.False(t, FromEnviron([]string{"SLOW_TESTS=" + v}).SlowTests, v)
	}
}
