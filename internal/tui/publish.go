package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type publishModel struct {
	projectID  int64
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newPublishModel(projectID int64) publishModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 80
	title.Width = 50
	title.Focus()

	body := textinput.New()
	body.Placeholder = "text"
	body.CharLimit = 500
	body.Width = 50

	return publishModel{projectID: projectID, inputs: []textinput.Model{title, body}}
}

func (m publishModel) View() string {
	var b strings.Builder
	b.WriteString("Title │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Text  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Publishing...]\n")
	} else {
		b.WriteString("\n[Publish]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("POST UPDATE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: publish")
}
