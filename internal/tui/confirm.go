package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Close \"" + m.message + "\"? This cannot be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
