//go:build !windows
// +build !windows

package procutil

import (
	"os/exec"
	"syscall"
)

func setOptNewProcessGroup(attrs *syscall.SysProcAttr) {
	attrs.Setpgid = true
}

func killProcessGroup(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}

	// Kill the whole group so that children spawned by the build system
	// (compiler jobs, test helpers) do not outlive it.
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
