package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/cfdapp/crowdfund-client/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type projectModel struct {
	project    models.Project
	quote      models.TokenQuote
	owned      bool
	amount     textinput.Model
	loading    bool
	submitting bool
	spinner    spinner.Model
	status     string
}

func newProjectModel() projectModel {
	amount := textinput.New()
	amount.Placeholder = "whole tokens"
	amount.CharLimit = 30
	amount.Width = 20
	amount.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return projectModel{amount: amount, spinner: s, loading: true}
}

func (m *projectModel) setProject(project models.Project, quote models.TokenQuote, owned bool) {
	m.project = project
	m.quote = quote
	m.owned = owned
	m.loading = false
	m.status = ""
}

func (m projectModel) View() string {
	if m.loading {
		return renderPage("PROJECT", m.spinner.View()+" Loading project...", "esc: back")
	}

	p := m.project
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString("Owner:   ")
	b.WriteString(nameOrAddress(p.OwnerName, p.OwnerAddress))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Goal:    %s %s\n", m.quote.Format(p.Goal), m.quote.Symbol))
	b.WriteString(fmt.Sprintf("Raised:  %s %s  (%d%%)\n", m.quote.Format(p.Balance), m.quote.Symbol, p.PercentFunded()))
	b.WriteString(fmt.Sprintf("Stake:   %s %s\n", m.quote.Format(p.FunderBalance), m.quote.Symbol))
	if p.Open {
		b.WriteString("State:   open\n")
	} else {
		b.WriteString("State:   closed\n")
	}

	if p.Metadata != nil {
		if p.Metadata.Category != "" {
			b.WriteString("Category: ")
			b.WriteString(p.Metadata.Category)
			b.WriteString("\n")
		}
		if p.Metadata.Description != "" {
			b.WriteString("\n")
			b.WriteString(p.Metadata.Description)
			b.WriteString("\n")
		}
		if len(p.Metadata.Updates) > 0 {
			b.WriteString("\nUpdates:\n")
			for _, u := range p.Metadata.Updates {
				posted := time.UnixMilli(u.PostedAt).Format("2006-01-02")
				b.WriteString(fmt.Sprintf("  %s  %s\n", posted, u.Title))
				if u.Body != "" {
					b.WriteString("    ")
					b.WriteString(u.Body)
					b.WriteString("\n")
				}
			}
		}
	}

	b.WriteString("\nAmount: [")
	b.WriteString(m.amount.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Waiting for the transaction...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "d: deposit │ w: withdraw │ esc: back"
	if m.owned {
		hotKeys = "d: deposit │ w: withdraw │ u: post update"
		if p.Open {
			hotKeys += " │ z: close"
		}
		hotKeys += " │ esc: back"
	}

	return renderPage("PROJECT", strings.TrimRight(b.String(), "\n"), hotKeys)
}
