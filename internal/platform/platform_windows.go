//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
)

// windowsAdapter keeps Windows awake through SetThreadExecutionState.
// The state is per-thread and continuous, so both calls are naturally
// idempotent.
type windowsAdapter struct {
	pointer
}

func newAdapter() (Adapter, error) {
	return &windowsAdapter{}, nil
}

func (a *windowsAdapter) Name() string { return "windows" }

func (a *windowsAdapter) PreventSleep() error {
	r, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous | esSystemRequired | esDisplayRequired))
	if r == 0 {
		return &Error{Op: "prevent sleep", Err: err}
	}
	return nil
}

func (a *windowsAdapter) AllowSleep() error {
	r, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous))
	if r == 0 {
		return &Error{Op: "allow sleep", Err: err}
	}
	return nil
}
