// Package localexec provides constructs for uniform execution of local
// processes, specifically conversion from model.Cmd to exec.Cmd.
package localexec

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/mkdrive-dev/mkdrive/pkg/logger"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

// Common environment for local exec commands.
type Env struct {
	pairs   []kvPair
	environ func() []string
}

func EmptyEnv() *Env {
	return &Env{
		environ: os.Environ,
	}
}

// DefaultEnv propagates the resolved build root and install root to
// subprocesses that expect them (meson test scripts read both).
func DefaultEnv(buildDir, destDir string) *Env {
	e := &Env{
		environ: os.Environ,
	}

	if buildDir != "" {
		e.Add("BUILDDIR", buildDir)
	}
	if destDir != "" {
		e.Add("DESTDIR", destDir)
	}

	return e
}

func (e *Env) Add(k, v string) {
	e.pairs = append(e.pairs, kvPair{Key: k, Value: v})
}

// ExecCmd turns a model.Cmd into a runnable exec.Cmd.
//
// The child sees the driver's own environment first, then the logger's
// terminal hints, then the Env pairs, then any per-command overrides.
// The logger is passed explicitly because the returned exec.Cmd carries
// no context of its own.
func (e *Env) ExecCmd(cmd model.Cmd, l logger.Logger) (*exec.Cmd, error) {
	if cmd.Empty() {
		return nil, errors.New("empty cmd")
	}
	c := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	e.populateExecCmd(c, cmd, l)
	return c, nil
}

func (e *Env) populateExecCmd(c *exec.Cmd, cmd model.Cmd, l logger.Logger) {
	c.Dir = cmd.Dir
	// Later entries shadow earlier ones (exec.Cmd keeps the last), so the
	// per-command overrides go in last.
	execEnv := e.environ()

	execEnv = logger.PrepareEnv(l, execEnv)
	for _, kv := range e.pairs {
		execEnv = addEnvIfNotPresent(execEnv, kv.Key, kv.Value)
	}

	execEnv = append(execEnv, cmd.Env...)
	c.Env = execEnv
}

type kvPair struct {
	Key   string
	Value string
}

func addEnvIfNotPresent(env []string, key, value string) []string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return env
		}
	}

	return append(env, key+"="+value)
}
