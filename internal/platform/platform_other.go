//go:build !darwin && !linux && !windows

package platform

// unsupportedAdapter fails every call on platforms without an
// implementation. Construction still succeeds so animation-only mode runs.
type unsupportedAdapter struct{}

func newAdapter() (Adapter, error) {
	return &unsupportedAdapter{}, nil
}

func (a *unsupportedAdapter) Name() string { return "unsupported" }

func (a *unsupportedAdapter) PreventSleep() error {
	return &Error{Op: "prevent sleep", Err: ErrUnsupported}
}

func (a *unsupportedAdapter) AllowSleep() error {
	return &Error{Op: "allow sleep", Err: ErrUnsupported}
}

func (a *unsupportedAdapter) MovePointer(dx, dy int) error {
	return &Error{Op: "move pointer", Err: ErrUnsupported}
}
