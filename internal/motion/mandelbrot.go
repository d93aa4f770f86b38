package motion

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	mandelbrotMaxIter = 60

	// Ticks spent zooming into one waypoint before moving to the next.
	mandelbrotDwell = 400

	// Terminal cells are roughly twice as tall as wide.
	mandelbrotAspect = 2.0
)

// mandelbrotWaypoints are coordinates worth zooming into, cycled in order.
var mandelbrotWaypoints = []struct {
	x, y, zoom float64
}{
	{-0.5, 0.0, 1.0},
	{-0.75, 0.1, 10.0},
	{0.3, 0.0, 50.0},
	{-0.1592, 1.0317, 100.0},
	{-0.8, 0.156, 200.0},
	{-0.235125, 0.827215, 1000.0},
}

var mandelbrotChars = []byte(" .:-=+*#%@")

// Mandelbrot renders the Mandelbrot set, slowly zooming through a fixed
// list of waypoints. Zoom level and palette shift are functions of the
// tick alone.
type Mandelbrot struct{}

func (m *Mandelbrot) Frame(tick, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	wp := mandelbrotWaypoints[(tick/mandelbrotDwell)%len(mandelbrotWaypoints)]
	progress := float64(tick % mandelbrotDwell)
	zoom := wp.zoom * math.Pow(1.01, progress)

	scale := 3.0 / (zoom * float64(width))
	var b strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cx := wp.x + (float64(col)-float64(width)/2)*scale
			cy := wp.y + (float64(row)-float64(height)/2)*scale*mandelbrotAspect
			b.WriteString(m.cell(tick, cx, cy))
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Mandelbrot) cell(tick int, cx, cy float64) string {
	iter := mandelbrotEscape(cx, cy)
	if iter == mandelbrotMaxIter {
		return " "
	}

	ch := mandelbrotChars[iter*len(mandelbrotChars)/(mandelbrotMaxIter+1)]

	// 256-color cube, shifted over time for a slow palette cycle.
	color := 16 + (iter*4+tick/8)%216
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(color)))
	return style.Render(string(ch))
}

func mandelbrotEscape(cx, cy float64) int {
	var zx, zy float64
	for i := 0; i < mandelbrotMaxIter; i++ {
		if zx*zx+zy*zy >= 4.0 {
			return i
		}
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return mandelbrotMaxIter
}
