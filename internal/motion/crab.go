package motion

import "strings"

// crabGlyph occupies two terminal columns.
const (
	crabGlyph = "🦀"
	crabWidth = 2
)

// Crab renders a crab walking back and forth across a single line.
type Crab struct{}

// Frame places the crab on a triangle-wave path: it walks right to the last
// column that fits the glyph, then turns around and walks back.
func (c *Crab) Frame(tick, width, height int) string {
	if width < crabWidth {
		return ""
	}

	travel := width - crabWidth
	if travel == 0 {
		return crabGlyph
	}

	phase := tick % (2 * travel)
	pos := phase
	if phase > travel {
		pos = 2*travel - phase
	}

	return strings.Repeat(" ", pos) + crabGlyph
}
