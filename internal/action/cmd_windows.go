//go:build windows

package action

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// Shell returns %COMSPEC% (cmd.exe when unset) and its command flag.
func Shell() (string, string) {
	return envString("COMSPEC", "cmd.exe"), "/C"
}

// configureCmd detaches the child from the console and process group.
func configureCmd(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.CREATE_NO_WINDOW,
	}
}
