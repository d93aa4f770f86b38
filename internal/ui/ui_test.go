package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/guinetik/busycrab/internal/motion"
)

func TestNewModelHasDimensions(t *testing.T) {
	m := NewModel(motion.VariantCrab)
	if m.width <= 0 || m.height <= 0 {
		t.Errorf("expected positive fallback dimensions, got %dx%d", m.width, m.height)
	}
	if m.tick != 0 {
		t.Errorf("expected tick 0, got %d", m.tick)
	}
}

func TestFrameMsgAdvancesTick(t *testing.T) {
	m := NewModel(motion.VariantCrab)

	next, cmd := update(frameMsg(time.Now()), m)
	if next.tick != 1 {
		t.Errorf("tick = %d, want 1", next.tick)
	}
	if cmd == nil {
		t.Error("expected a follow-up frame command")
	}

	next, _ = update(frameMsg(time.Now()), next)
	if next.tick != 2 {
		t.Errorf("tick = %d, want 2", next.tick)
	}
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	m := NewModel(motion.VariantMatrix)

	next, _ := update(tea.WindowSizeMsg{Width: 120, Height: 40}, m)
	if next.width != 120 || next.height != 40 {
		t.Errorf("dimensions = %dx%d, want 120x40", next.width, next.height)
	}
}

func TestQuitKeyStopsTheDriver(t *testing.T) {
	m := NewModel(motion.VariantCrab)

	next, cmd := update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, m)
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}

	// Frames after quit neither advance nor reschedule.
	after, frameCmd := update(frameMsg(time.Now()), next)
	if after.tick != next.tick {
		t.Error("tick advanced after quit")
	}
	if frameCmd != nil {
		t.Error("frame rescheduled after quit")
	}
	if view(after) != "" {
		t.Error("expected empty view after quit")
	}
}

func TestViewNoneIsEmpty(t *testing.T) {
	m := NewModel(motion.VariantNone)
	for i := 0; i < 5; i++ {
		if got := view(m); got != "" {
			t.Fatalf("tick %d: view = %q, want empty", m.tick, got)
		}
		m, _ = update(frameMsg(time.Now()), m)
	}
}

func TestViewCrabShowsCrabAndHelp(t *testing.T) {
	m := NewModel(motion.VariantCrab)
	got := view(m)

	if !strings.Contains(got, "🦀") {
		t.Errorf("view %q does not contain the crab", got)
	}
	if !strings.Contains(got, "quit") {
		t.Errorf("view %q does not mention how to quit", got)
	}
}

func TestViewIsDeterministicPerTick(t *testing.T) {
	m := NewModel(motion.VariantMatrix)
	m.tick = 17

	if view(m) != view(m) {
		t.Error("identical model rendered differently")
	}
}
