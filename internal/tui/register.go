package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// register form field positions
const (
	regFieldUsername = iota
	regFieldEmail
	regFieldFirstname
	regFieldLastname
	regFieldPassword
	regFieldRepeat
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel() registerModel {
	labels := []struct {
		placeholder string
		masked      bool
	}{
		{placeholder: "username"},
		{placeholder: "email"},
		{placeholder: "first name"},
		{placeholder: "last name"},
		{placeholder: "password", masked: true},
		{placeholder: "repeat password", masked: true},
	}

	inputs := make([]textinput.Model, 0, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = 256
		in.Width = 40
		if l.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}
		inputs = append(inputs, in)
	}

	return registerModel{inputs: inputs}
}

func (m registerModel) View() string {
	rows := []struct {
		label string
		idx   int
	}{
		{label: "Username  ", idx: regFieldUsername},
		{label: "Email     ", idx: regFieldEmail},
		{label: "First name", idx: regFieldFirstname},
		{label: "Last name ", idx: regFieldLastname},
		{label: "Password  ", idx: regFieldPassword},
		{label: "Repeat    ", idx: regFieldRepeat},
	}

	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for _, row := range rows {
		b.WriteString(row.label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[row.idx].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
