//go:build !windows

package action

import (
	"os/exec"
	"syscall"
)

// Shell returns $SHELL (bash when unset) and its command flag.
func Shell() (string, string) {
	return envString("SHELL", "bash"), "-c"
}

// configureCmd puts the child in its own process group.
func configureCmd(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
