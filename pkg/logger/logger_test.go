package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewFuncLogger(false, InfoLvl, func(level Level, b []byte) error {
		buf.Write(b)
		return nil
	})

	l.Debugf("not shown")
	l.Verbosef("not shown either")
	l.Infof("hello")
	l.Errorf("boom")

	assert.Equal(t, "hello\nboom\n", buf.String())
}

func TestWriterFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewFuncLogger(false, InfoLvl, func(level Level, b []byte) error {
		buf.Write(b)
		return nil
	})

	n, err := l.Writer(DebugLvl).Write([]byte("debug output"))
	assert.NoError(t, err)
	assert.Equal(t, len("debug output"), n)
	assert.Empty(t, buf.String())

	_, _ = l.Writer(InfoLvl).Write([]byte("build output"))
	assert.Equal(t, "build output", buf.String())
}

func TestPrepareEnv(t *testing.T) {
	l := NewFuncLogger(true, InfoLvl, func(Level, []byte) error { return nil })

	env := PrepareEnv(l, []string{"PATH=/usr/bin"})
	joined := strings.Join(env, " ")
	assert.Contains(t, joined, "LINES=24")
	assert.Contains(t, joined, "COLUMNS=80")
	assert.Contains(t, joined, "FORCE_COLOR=1")
	assert.Contains(t, joined, "NINJA_STATUS=")

	// existing entries win
	env = PrepareEnv(l, []string{"LINES=50", "NINJA_STATUS=custom"})
	assert.NotContains(t, env, "LINES=24")
	count := 0
	for _, e := range env {
		if strings.HasPrefix(e, "NINJA_STATUS=") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
