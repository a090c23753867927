// Package procutil has helpers for managing OS processes across platforms.
package procutil

import (
	"os/exec"
	"syscall"
)

func SetOptNewProcessGroup(attrs *syscall.SysProcAttr) {
	setOptNewProcessGroup(attrs)
}

func KillProcessGroup(cmd *exec.Cmd) {
	killProcessGroup(cmd)
}
