package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSetOrder(t *testing.T) {
	s := NewOptionSet()
	s.Append("man", FeatureValue(Disabled))
	s.Append("translations", BoolValue(false))
	s.Append("version-tag", StringValue("v255"))
	s.Append("tty-gid", IntValue(5))

	assert.Equal(t, []string{
		"-Dman=disabled",
		"-Dtranslations=false",
		"-Dversion-tag=v255",
		"-Dtty-gid=5",
	}, s.Flags())
}

func TestOptionSetReplaceKeepsPosition(t *testing.T) {
	s := NewOptionSet()
	s.Append("selinux", FeatureValue(Auto))
	s.Append("apparmor", FeatureValue(Enabled))
	s.Append("selinux", FeatureValue(Enabled))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"-Dselinux=enabled", "-Dapparmor=enabled"}, s.Flags())

	v, ok := s.Get("selinux")
	assert.True(t, ok)
	assert.Equal(t, "enabled", v.MesonString())
}

func TestFeatureSpelling(t *testing.T) {
	assert.Equal(t, "auto", FeatureValue(Auto).MesonString())
	assert.Equal(t, "enabled", FeatureValue(Enabled).MesonString())
	assert.Equal(t, "disabled", FeatureValue(Disabled).MesonString())

	var zero Value
	assert.Equal(t, "auto", zero.MesonString())
}

func TestCmdString(t *testing.T) {
	c := NewCmd("meson", "setup", "/src/build", "-Dfallback-hostname=host name")
	assert.Equal(t, `meson setup /src/build '-Dfallback-hostname=host name'`, c.String())
}

func TestCmdWithEnvDoesNotAlias(t *testing.T) {
	base := NewCmd("ninja", "-C", "build")
	a := base.WithEnv("A=1")
	b := base.WithEnv("B=2")

	assert.Equal(t, []string{"A=1"}, a.Env)
	assert.Equal(t, []string{"B=2"}, b.Env)
	assert.Nil(t, base.Env)
}
