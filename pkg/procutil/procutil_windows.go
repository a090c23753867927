//go:build windows
// +build windows

package procutil

import (
	"os/exec"
	"syscall"
)

func setOptNewProcessGroup(attrs *syscall.SysProcAttr) {
	// See process-creation-flags in the win32 docs.
	attrs.CreationFlags = syscall.CREATE_NEW_PROCESS_GROUP
}

// Windows has no process groups in the POSIX sense, so only the direct
// child is killed.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}
