// Package platform abstracts the OS facilities busycrab needs: keeping the
// system awake and injecting relative pointer movement. One adapter exists
// per supported OS, selected with build tags; unsupported systems get an
// adapter whose calls fail with ErrUnsupported so animation-only mode keeps
// working.
package platform

import "errors"

// Adapter is the platform capability set.
//
// PreventSleep and AllowSleep are idempotent: repeated calls have the same
// observable effect as a single call. MovePointer moves the cursor by a
// relative offset. All failures are reported as *Error and may be treated
// as non-fatal.
type Adapter interface {
	PreventSleep() error
	AllowSleep() error
	MovePointer(dx, dy int) error
	Name() string
}

// ErrUnsupported marks calls on platforms without an implementation.
var ErrUnsupported = errors.New("unsupported platform")

// Error wraps a platform call failure with the operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "platform: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns the adapter for the current OS.
func New() (Adapter, error) {
	return newAdapter()
}
