package motion

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const matrixTailLen = 8

// matrixSymbols is the character pool the rain is drawn from.
var matrixSymbols = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz!@#$%^&*()-_=+[]{}|\\:;<>,.?/~`")

var (
	matrixHeadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	// Tail shades from bright to dark green, indexed by distance from the
	// drop head.
	matrixTailStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("48")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("23")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	}

	matrixDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
)

// Matrix renders falling rain of characters, one drop per column.
type Matrix struct{}

// Frame draws the rain grid. Each column gets its own drop offset and cycle
// length derived from the column index, so drops fall out of phase without
// any shared state between frames.
func (m *Matrix) Frame(tick, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			b.WriteString(m.cell(tick, row, col, height))
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Matrix) cell(tick, row, col, rows int) string {
	seed := cellHash(col, 0, 0)
	cycle := rows + matrixTailLen + int(seed%16)
	head := (tick/2 + int(seed)%cycle) % cycle

	dist := head - row
	switch {
	case dist == 0:
		return matrixHeadStyle.Render(m.symbol(tick, row, col))
	case dist > 0 && dist <= matrixTailLen:
		// Tail characters shimmer occasionally instead of every frame.
		shade := (dist - 1) * len(matrixTailStyles) / matrixTailLen
		return matrixTailStyles[shade].Render(m.symbol(tick/6, row, col))
	default:
		// Sparse background noise in the empty space.
		if cellHash(col, row, tick/10)%23 == 0 {
			return matrixDimStyle.Render(m.symbol(tick/10, row, col))
		}
		return " "
	}
}

func (m *Matrix) symbol(tick, row, col int) string {
	h := cellHash(tick, row, col)
	return string(matrixSymbols[h%uint32(len(matrixSymbols))])
}
