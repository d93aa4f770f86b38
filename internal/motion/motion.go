// Package motion provides the terminal animation renderers.
//
// A Renderer is a pure function of the tick counter and the terminal
// dimensions: calling Frame twice with the same arguments returns the same
// text block. Renderers never block and never exceed the given width;
// a non-positive width renders nothing. Variants that need visual noise
// (matrix rain, palette cycling) derive it from a deterministic hash of the
// tick and cell position instead of a random source.
package motion

import (
	"fmt"
	"strings"
)

// TicksPerSecond is the fixed animation frame rate. The driver sleeps
// 1/TicksPerSecond between frames regardless of the selected variant.
const TicksPerSecond = 20

// Variant selects the animation algorithm.
type Variant int

const (
	VariantCrab Variant = iota
	VariantMatrix
	VariantClock
	VariantMandelbrot
	VariantNone
)

// String returns the CLI name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantCrab:
		return "crab"
	case VariantMatrix:
		return "matrix"
	case VariantClock:
		return "clock"
	case VariantMandelbrot:
		return "mandelbrot"
	case VariantNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseVariant maps a CLI motion name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "crab":
		return VariantCrab, nil
	case "matrix":
		return VariantMatrix, nil
	case "clock":
		return VariantClock, nil
	case "mandelbrot":
		return VariantMandelbrot, nil
	case "none", "":
		return VariantNone, nil
	default:
		return VariantNone, fmt.Errorf("unknown motion %q (valid: crab, matrix, clock, mandelbrot, none)", s)
	}
}

// Fullscreen reports whether the variant draws the whole terminal rather
// than a single inline line.
func (v Variant) Fullscreen() bool {
	switch v {
	case VariantMatrix, VariantClock, VariantMandelbrot:
		return true
	default:
		return false
	}
}

// Renderer produces one animation frame per tick.
type Renderer interface {
	// Frame renders the frame for the given tick into a text block of at
	// most width columns and height lines. It returns the empty string
	// when there is nothing to draw.
	Frame(tick, width, height int) string
}

// New returns the renderer for the given variant.
func New(v Variant) Renderer {
	switch v {
	case VariantCrab:
		return &Crab{}
	case VariantMatrix:
		return &Matrix{}
	case VariantClock:
		return &Clock{}
	case VariantMandelbrot:
		return &Mandelbrot{}
	default:
		return noneRenderer{}
	}
}

// noneRenderer draws nothing. The animation driver still runs its tick loop
// so shutdown latency stays the same across variants.
type noneRenderer struct{}

func (noneRenderer) Frame(tick, width, height int) string { return "" }

// cellHash is a small deterministic mixer used by renderers that want
// per-cell noise without a random source. Same inputs, same output.
func cellHash(a, b, c int) uint32 {
	h := uint32(2166136261)
	for _, v := range [3]int{a, b, c} {
		h ^= uint32(v)
		h *= 16777619
		h ^= h >> 13
	}
	return h
}
