package platform

import (
	"errors"
	"testing"
)

func TestNewReturnsAdapter(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if a == nil {
		t.Fatal("New() returned nil adapter")
	}
	if a.Name() == "" {
		t.Error("adapter has no name")
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "prevent sleep", Err: ErrUnsupported}

	if got, want := err.Error(), "platform: prevent sleep: unsupported platform"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("expected errors.Is to see through the wrapper")
	}
}
