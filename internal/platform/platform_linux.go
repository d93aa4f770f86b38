//go:build linux

package platform

import (
	"errors"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/guinetik/busycrab/internal/util"
)

const inhibitorVerifyDelay = 100 * time.Millisecond

// linuxAdapter prefers a blocking systemd-inhibit child process and falls
// back to xset screensaver/DPMS toggles on plain X11 sessions.
type linuxAdapter struct {
	pointer

	mu       sync.Mutex
	cmd      *exec.Cmd
	usedXset bool
}

func newAdapter() (Adapter, error) {
	return &linuxAdapter{}, nil
}

func (a *linuxAdapter) Name() string { return "linux" }

func (a *linuxAdapter) PreventSleep() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd != nil || a.usedXset {
		return nil
	}

	if util.HasCommand("systemd-inhibit") {
		if err := a.startInhibitLocked(); err == nil {
			return nil
		} else {
			log.Printf("linux: systemd-inhibit unavailable: %v", err)
		}
	}

	if util.HasCommand("xset") && os.Getenv("DISPLAY") != "" {
		runBestEffort("xset", "s", "off")
		runBestEffort("xset", "-dpms")
		a.usedXset = true
		log.Printf("linux: screensaver and DPMS disabled via xset")
		return nil
	}

	return &Error{Op: "prevent sleep", Err: errors.New("no inhibitor available (need systemd-inhibit or xset)")}
}

func (a *linuxAdapter) startInhibitLocked() error {
	cmd := exec.Command("systemd-inhibit",
		"--what=idle:sleep",
		"--who=busycrab",
		"--why=Keeping the system active",
		"--mode=block",
		"sh", "-c", "while true; do sleep 1; done")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return err
	}

	// Catch immediate exits, e.g. a logind that refuses the lock.
	time.Sleep(inhibitorVerifyDelay)
	if err := cmd.Process.Signal(syscall.Signal(0)); err != nil {
		_ = cmd.Wait()
		return err
	}
	go func() { _ = cmd.Wait() }()

	a.cmd = cmd
	log.Printf("linux: systemd-inhibit started (pid %d)", cmd.Process.Pid)
	return nil
}

func (a *linuxAdapter) AllowSleep() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd != nil {
		pid := a.cmd.Process.Pid
		if err := a.cmd.Process.Kill(); err != nil {
			log.Printf("linux: failed to stop systemd-inhibit (pid %d): %v", pid, err)
		}
		_ = syscall.Kill(-pid, syscall.SIGKILL)
		a.cmd = nil
		log.Printf("linux: systemd-inhibit stopped (pid %d)", pid)
	}

	if a.usedXset {
		runBestEffort("xset", "s", "on")
		runBestEffort("xset", "+dpms")
		a.usedXset = false
		log.Printf("linux: screensaver and DPMS restored")
	}

	return nil
}

// runBestEffort executes a command and logs failures without returning them.
func runBestEffort(name string, args ...string) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		log.Printf("linux: best-effort command %s %s failed: %v (output: %q)",
			name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
}
