package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type startProjectModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newStartProjectModel() startProjectModel {
	name := textinput.New()
	name.Placeholder = "project name (8-30 characters)"
	name.CharLimit = 40
	name.Width = 40
	name.Focus()

	goal := textinput.New()
	goal.Placeholder = "funding goal"
	goal.CharLimit = 30
	goal.Width = 40

	return startProjectModel{inputs: []textinput.Model{name, goal}}
}

func (m startProjectModel) View() string {
	var b strings.Builder
	b.WriteString("Field │ Value\n")
	b.WriteString("──────┼────────────────────────────────────────────\n")
	b.WriteString("Name  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Goal  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}
	b.WriteString("\nThe project becomes visible after an administrator approves it.\n")

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("START A PROJECT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
