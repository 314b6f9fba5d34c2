// Package action launches corner commands through the user's shell.
package action

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Executor starts actions as detached shell processes.
type Executor struct {
	shell string
	flag  string
}

// New returns an executor using the shell from the environment.
func New() *Executor {
	shell, flag := Shell()
	return NewWithShell(shell, flag)
}

// NewWithShell returns an executor running actions as `shell flag action`.
func NewWithShell(shell, flag string) *Executor {
	return &Executor{shell: shell, flag: flag}
}

// ShellPath returns the shell used for actions.
func (e *Executor) ShellPath() string {
	return e.shell
}

// Execute starts the action and returns without waiting for it. Only a
// failure to start is reported; the exit status is never observed.
func (e *Executor) Execute(action string) error {
	if strings.TrimSpace(action) == "" {
		return nil
	}
	cmd := exec.Command(e.shell, e.flag, action)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	configureCmd(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.shell, err)
	}
	log.WithFields(log.Fields{
		"pid":   cmd.Process.Pid,
		"shell": e.shell,
	}).Debug("Action started")

	// Reap the child so it does not linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
