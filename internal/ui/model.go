// Package ui drives the terminal animation. It owns stdout for the whole
// run; everything else in the process writes to the log stream only.
package ui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/guinetik/busycrab/internal/motion"
)

// frameInterval is the animation frame period, independent of and much
// shorter than the activity interval.
const frameInterval = time.Second / motion.TicksPerSecond

// Fallback dimensions when the terminal size cannot be determined.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model holds the animation state: the tick counter and the last known
// terminal dimensions. The activity loop never sees any of it.
type Model struct {
	renderer motion.Renderer
	variant  motion.Variant
	keys     KeyMap

	tick     int
	width    int
	height   int
	quitting bool
}

// NewModel builds the animation model for the selected variant. The
// initial dimensions come from a terminal probe and fall back to a default
// size; resize messages keep them current afterwards.
func NewModel(variant motion.Variant) Model {
	w, h := terminalSize()
	return Model{
		renderer: motion.New(variant),
		variant:  variant,
		keys:     DefaultKeys(),
		width:    w,
		height:   h,
	}
}

// Tick returns the current frame counter.
func (m Model) Tick() int { return m.tick }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nextFrame()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return update(msg, m)
}

// View implements tea.Model.
func (m Model) View() string {
	return view(m)
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return defaultWidth, defaultHeight
}
