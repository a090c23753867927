package model

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Cmd is a single external command invocation.
type Cmd struct {
	Argv []string
	Dir  string
	Env  []string
}

func NewCmd(argv ...string) Cmd {
	return Cmd{Argv: argv}
}

// WithEnv returns a copy of the command with extra "key=value" entries
// appended to its environment overrides.
func (c Cmd) WithEnv(env ...string) Cmd {
	combined := make([]string, 0, len(c.Env)+len(env))
	combined = append(combined, c.Env...)
	combined = append(combined, env...)
	c.Env = combined
	return c
}

func (c Cmd) Empty() bool {
	return len(c.Argv) == 0
}

// String renders the command the way a user would type it in a shell.
func (c Cmd) String() string {
	return shellquote.Join(c.Argv...)
}

// ToUnixCmd wraps a shell script fragment for execution on the host.
func ToUnixCmd(cmd string) Cmd {
	if cmd == "" {
		return Cmd{}
	}
	return Cmd{Argv: []string{"sh", "-c", strings.TrimSpace(cmd)}}
}
