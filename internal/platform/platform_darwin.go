//go:build darwin

package platform

import (
	"errors"
	"log"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/guinetik/busycrab/internal/util"
)

const (
	caffeinateTermWait = 800 * time.Millisecond
	caffeinateKillWait = 500 * time.Millisecond
)

// darwinAdapter keeps macOS awake with a supervised caffeinate child
// process.
type darwinAdapter struct {
	pointer

	mu       sync.Mutex
	cmd      *exec.Cmd
	waitDone chan struct{}
}

func newAdapter() (Adapter, error) {
	return &darwinAdapter{}, nil
}

func (a *darwinAdapter) Name() string { return "darwin" }

func (a *darwinAdapter) PreventSleep() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd != nil {
		return nil
	}

	if !util.HasCommand("caffeinate") {
		return &Error{Op: "prevent sleep", Err: errors.New("caffeinate not found in PATH")}
	}

	cmd := exec.Command("caffeinate", "-s", "-d", "-m", "-i", "-u")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return &Error{Op: "prevent sleep", Err: err}
	}

	a.cmd = cmd
	a.waitDone = make(chan struct{})
	go func(c *exec.Cmd, done chan struct{}) {
		_ = c.Wait()
		close(done)
	}(cmd, a.waitDone)

	log.Printf("darwin: caffeinate started (pid %d)", cmd.Process.Pid)
	return nil
}

func (a *darwinAdapter) AllowSleep() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd == nil {
		return nil
	}

	cmd, done := a.cmd, a.waitDone
	a.cmd, a.waitDone = nil, nil
	pid := cmd.Process.Pid

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		log.Printf("darwin: SIGTERM to caffeinate (pid %d) failed: %v", pid, err)
	}

	select {
	case <-done:
		log.Printf("darwin: caffeinate (pid %d) terminated cleanly", pid)
		return nil
	case <-time.After(caffeinateTermWait):
	}

	log.Printf("darwin: caffeinate (pid %d) did not terminate, sending SIGKILL", pid)
	if err := cmd.Process.Kill(); err != nil {
		log.Printf("darwin: failed to kill caffeinate (pid %d): %v", pid, err)
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)

	select {
	case <-done:
	case <-time.After(caffeinateKillWait):
		log.Printf("darwin: warning: caffeinate (pid %d) may still be running", pid)
		return &Error{Op: "allow sleep", Err: errors.New("caffeinate did not terminate")}
	}
	return nil
}
