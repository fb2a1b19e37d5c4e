package tui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cfdapp/crowdfund-client/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type crowdsaleModel struct {
	quote      models.TokenQuote
	wallet     *big.Int
	amount     textinput.Model
	loading    bool
	submitting bool
	spinner    spinner.Model
	status     string
}

func newCrowdsaleModel() crowdsaleModel {
	amount := textinput.New()
	amount.Placeholder = "tokens to buy"
	amount.CharLimit = 20
	amount.Width = 20
	amount.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return crowdsaleModel{amount: amount, spinner: s, loading: true}
}

func (m *crowdsaleModel) setQuote(quote models.TokenQuote, wallet *big.Int) {
	m.quote = quote
	m.wallet = wallet
	m.loading = false
}

func (m crowdsaleModel) View() string {
	if m.loading {
		return renderPage("TOKEN SALE", m.spinner.View()+" Loading sale terms...", "esc: back")
	}

	q := m.quote
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Token:        %s (%d decimals)\n", q.Symbol, q.Decimals))
	if q.Rate != nil {
		b.WriteString(fmt.Sprintf("Rate:         %s units per wei\n", q.Rate.String()))
	}
	b.WriteString(fmt.Sprintf("For sale:     %s %s\n", q.Format(q.ForSale), q.Symbol))
	b.WriteString(fmt.Sprintf("Your balance: %s %s\n", q.Format(m.wallet), q.Symbol))

	b.WriteString("\nAmount: [")
	b.WriteString(m.amount.View())
	b.WriteString("] whole tokens\n")

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

	return renderPage("TOKEN SALE", strings.TrimRight(b.String(), "\n"), "enter/b: buy │ esc: back")
}
