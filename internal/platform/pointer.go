//go:build darwin || linux || windows

package platform

import (
	"errors"

	"github.com/go-vgo/robotgo"
)

// pointer injects relative cursor movement through robotgo. It is embedded
// in every supported adapter.
type pointer struct{}

// MovePointer moves the cursor by (dx, dy). robotgo does not report
// injection failures, so a non-zero move is verified by comparing the
// cursor location before and after; a cursor pinned at a screen edge can
// trip this check, which is why callers treat the error as non-fatal.
func (pointer) MovePointer(dx, dy int) error {
	if dx == 0 && dy == 0 {
		robotgo.MoveRelative(0, 0)
		return nil
	}

	x0, y0 := robotgo.Location()
	robotgo.MoveRelative(dx, dy)
	x1, y1 := robotgo.Location()

	if x0 == x1 && y0 == y1 {
		return &Error{Op: "move pointer", Err: errors.New("cursor did not move; input injection may be blocked")}
	}
	return nil
}
