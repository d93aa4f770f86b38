package motion

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const clockDigitRows = 5

var clockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)

// clockCycleChars spins inside the centre of the 0 and 1 glyphs.
var clockCycleChars = [][]rune{
	{'0', 'O', 'o', '°'},
	{'1', 'I', 'l', '|'},
}

var clockDigits = [10][clockDigitRows]string{
	{" _____ ", "|     |", "|  %c  |", "|     |", "|_____|"},
	{"   |   ", "   |   ", "   %c   ", "   |   ", "   |   "},
	{" _____ ", "      |", " _____|", "|      ", "|_____ "},
	{" _____ ", "      |", " _____|", "      |", " _____|"},
	{"|     |", "|     |", "|_____|", "      |", "      |"},
	{" _____ ", "|      ", "|_____ ", "      |", " _____|"},
	{" _____ ", "|      ", "|_____ ", "|     |", "|_____|"},
	{" _____ ", "      |", "      |", "      |", "      |"},
	{" _____ ", "|     |", "|_____|", "|     |", "|_____|"},
	{" _____ ", "|     |", "|_____|", "      |", " _____|"},
}

var clockColon = [clockDigitRows]string{"       ", "   |   ", "       ", "   |   ", "       "}

// Clock renders the elapsed run time as large seven-segment style digits.
// The time shown derives from the tick counter, not the wall clock, so the
// frame stays a pure function of its arguments.
type Clock struct{}

func (c *Clock) Frame(tick, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	elapsed := tick / TicksPerSecond
	hours := elapsed / 3600
	minutes := (elapsed / 60) % 60
	seconds := elapsed % 60
	if hours > 99 {
		hours = 99
	}

	lines := c.bigTime(tick, hours, minutes, seconds)
	if len(lines[0]) > width || height < clockDigitRows {
		// Not enough room for the big digits, fall back to a plain line.
		plain := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
		if len(plain) > width {
			return ""
		}
		return clockStyle.Render(center(plain, width))
	}

	topPad := (height - clockDigitRows) / 2
	var b strings.Builder
	for i := 0; i < topPad; i++ {
		b.WriteByte('\n')
	}
	for i, line := range lines {
		b.WriteString(clockStyle.Render(center(line, width)))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Clock) bigTime(tick, hours, minutes, seconds int) [clockDigitRows]string {
	digits := []int{hours / 10, hours % 10, -1, minutes / 10, minutes % 10, -1, seconds / 10, seconds % 10}

	var out [clockDigitRows]string
	for row := 0; row < clockDigitRows; row++ {
		var line strings.Builder
		for _, d := range digits {
			if d == -1 {
				// Colon blinks once per second.
				if (tick/TicksPerSecond)%2 == 0 {
					line.WriteString(clockColon[row])
				} else {
					line.WriteString(strings.Repeat(" ", len(clockColon[row])))
				}
				continue
			}
			line.WriteString(c.digitRow(tick, d, row))
		}
		out[row] = line.String()
	}
	return out
}

func (c *Clock) digitRow(tick, digit, row int) string {
	art := clockDigits[digit][row]
	if !strings.Contains(art, "%c") {
		return art
	}
	if digit <= 1 {
		chars := clockCycleChars[digit]
		return fmt.Sprintf(art, chars[(tick/6)%len(chars)])
	}
	return fmt.Sprintf(art, rune('0'+digit))
}

// center pads s with spaces to width columns. Longer strings come back
// unchanged; the caller checks the fit.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
