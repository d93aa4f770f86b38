package motion

import (
	"strings"
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Variant
		wantErr bool
	}{
		{name: "crab", input: "crab", want: VariantCrab},
		{name: "matrix", input: "matrix", want: VariantMatrix},
		{name: "clock", input: "clock", want: VariantClock},
		{name: "mandelbrot", input: "mandelbrot", want: VariantMandelbrot},
		{name: "none", input: "none", want: VariantNone},
		{name: "uppercase", input: "CRAB", want: VariantCrab},
		{name: "padded", input: " matrix ", want: VariantMatrix},
		{name: "empty defaults to none", input: "", want: VariantNone},
		{name: "unknown", input: "disco", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVariant(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVariant(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFrameIsPure(t *testing.T) {
	variants := []Variant{VariantCrab, VariantMatrix, VariantClock, VariantMandelbrot, VariantNone}
	ticks := []int{0, 1, 7, 123, 99999}

	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			r := New(v)
			for _, tick := range ticks {
				first := r.Frame(tick, 40, 12)
				second := r.Frame(tick, 40, 12)
				if first != second {
					t.Errorf("Frame(%d, 40, 12) not deterministic", tick)
				}
			}
		})
	}
}

func TestNoneRendersNothing(t *testing.T) {
	r := New(VariantNone)
	for _, tick := range []int{0, 50, 100000} {
		for _, w := range []int{-1, 0, 1, 80} {
			if got := r.Frame(tick, w, 24); got != "" {
				t.Errorf("none Frame(%d, %d, 24) = %q, want empty", tick, w, got)
			}
		}
	}
}

func TestNonPositiveDimensionsRenderNothing(t *testing.T) {
	variants := []Variant{VariantCrab, VariantMatrix, VariantClock, VariantMandelbrot}
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			r := New(v)
			if got := r.Frame(10, 0, 24); got != "" {
				t.Errorf("Frame(10, 0, 24) = %q, want empty", got)
			}
			if got := r.Frame(10, -5, 24); got != "" {
				t.Errorf("Frame(10, -5, 24) = %q, want empty", got)
			}
		})
	}
}

func TestCrabWalksAndBounces(t *testing.T) {
	r := &Crab{}
	width := 10
	travel := width - crabWidth

	// Walks right one column per tick.
	for tick := 0; tick <= travel; tick++ {
		got := r.Frame(tick, width, 1)
		want := strings.Repeat(" ", tick) + crabGlyph
		if got != want {
			t.Fatalf("tick %d: got %q, want %q", tick, got, want)
		}
	}

	// One tick past the right edge it has turned around.
	got := r.Frame(travel+1, width, 1)
	want := strings.Repeat(" ", travel-1) + crabGlyph
	if got != want {
		t.Fatalf("after bounce: got %q, want %q", got, want)
	}

	// A full round trip lands back at the left edge.
	if got := r.Frame(2*travel, width, 1); got != crabGlyph {
		t.Fatalf("after round trip: got %q, want %q", got, crabGlyph)
	}
}

func TestCrabNeverExceedsWidth(t *testing.T) {
	r := &Crab{}
	for _, width := range []int{2, 3, 5, 80} {
		for tick := 0; tick < 4*width; tick++ {
			frame := r.Frame(tick, width, 1)
			cols := strings.Count(frame, " ") + crabWidth
			if cols > width {
				t.Fatalf("width %d tick %d: frame occupies %d columns", width, tick, cols)
			}
		}
	}
}

func TestCrabTinyWidths(t *testing.T) {
	r := &Crab{}
	if got := r.Frame(5, 1, 1); got != "" {
		t.Errorf("width 1: got %q, want empty", got)
	}
	if got := r.Frame(5, 2, 1); got != crabGlyph {
		t.Errorf("width 2: got %q, want the crab pinned at column 0", got)
	}
}

func TestMatrixFillsGrid(t *testing.T) {
	r := &Matrix{}
	frame := r.Frame(42, 20, 8)
	lines := strings.Split(frame, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
}

func TestClockShowsElapsedTime(t *testing.T) {
	r := &Clock{}

	// Small terminal falls back to the plain HH:MM:SS line.
	frame := r.Frame(0, 10, 1)
	if !strings.Contains(frame, "00:00:00") {
		t.Errorf("tick 0: %q does not contain 00:00:00", frame)
	}

	tick := (1*60 + 5) * TicksPerSecond
	frame = r.Frame(tick, 10, 1)
	if !strings.Contains(frame, "00:01:05") {
		t.Errorf("tick %d: %q does not contain 00:01:05", tick, frame)
	}
}

func TestClockBigDigitsFitDimensions(t *testing.T) {
	r := &Clock{}
	frame := r.Frame(0, 80, 24)
	if frame == "" {
		t.Fatal("expected big digit output on a full-size terminal")
	}
	if got := len(strings.Split(frame, "\n")); got > 24 {
		t.Errorf("frame has %d lines, want at most 24", got)
	}
}

func TestMandelbrotGridShape(t *testing.T) {
	r := &Mandelbrot{}
	frame := r.Frame(100, 30, 10)
	lines := strings.Split(frame, "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
}
