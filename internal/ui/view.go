package ui

func view(m Model) string {
	if m.quitting {
		return ""
	}

	bodyHeight := m.height
	if m.variant.Fullscreen() {
		// Leave the bottom line for the help footer.
		bodyHeight = m.height - 1
	}

	frame := m.renderer.Frame(m.tick, m.width, bodyHeight)
	if frame == "" {
		return ""
	}

	return frame + "\n" + Current.Help.Render(helpLine(m.keys))
}
