package tui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cfdapp/crowdfund-client/internal/view"
	"github.com/cfdapp/crowdfund-client/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type accountTab int

const (
	accountTabWallet accountTab = iota
	accountTabCreated
	accountTabFunded
)

type accountModel struct {
	address string
	profile *models.Profile
	quote   models.TokenQuote
	wallet  *big.Int
	created []models.Project
	funded  []models.Project

	tab     accountTab
	pager   view.Pagination
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newAccountModel() accountModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return accountModel{
		pager:   view.NewPagination(view.DefaultPerPage),
		spinner: s,
		loading: true,
	}
}

func (m *accountModel) setData(profile *models.Profile, quote models.TokenQuote, wallet *big.Int, created, funded []models.Project) {
	m.profile = profile
	m.quote = quote
	m.wallet = wallet
	m.created = created
	m.funded = funded
	m.loading = false
	m.pager.Reclamp(m.itemCount())
	m.idx = 0
}

func (m accountModel) activeList() []models.Project {
	switch m.tab {
	case accountTabCreated:
		return m.created
	case accountTabFunded:
		return m.funded
	default:
		return nil
	}
}

func (m accountModel) itemCount() int {
	return len(m.activeList())
}

func (m *accountModel) switchTab() {
	m.tab = (m.tab + 1) % 3
	m.pager = view.NewPagination(view.DefaultPerPage)
	m.idx = 0
	m.status = ""
}

func (m accountModel) current() (models.Project, bool) {
	list := m.activeList()
	from, to := m.pager.Window(len(list))
	i := from + m.idx
	if i < from || i >= to {
		return models.Project{}, false
	}
	return list[i], true
}

func (m *accountModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *accountModel) moveDown() {
	from, to := m.pager.Window(m.itemCount())
	if m.idx < to-from-1 {
		m.idx++
	}
}

func (m *accountModel) pageLeft() {
	m.pager.SetPage(m.pager.Active-1, m.itemCount())
	m.idx = 0
}

func (m *accountModel) pageRight() {
	m.pager.SetPage(m.pager.Active+1, m.itemCount())
	m.idx = 0
}

func (m accountModel) View() string {
	var b strings.Builder

	tabs := []string{" Wallet ", " Created ", " Funded "}
	tabs[m.tab] = "[" + strings.TrimSpace(tabs[m.tab]) + "]"
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading account...\n")
		return renderPage("MY ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	switch m.tab {
	case accountTabWallet:
		m.renderWallet(&b)
	case accountTabCreated, accountTabFunded:
		m.renderProjects(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "tab: switch │ esc: back"
	if m.tab == accountTabWallet {
		hotKeys = "c: copy address │ " + hotKeys
	} else {
		hotKeys = "↑/↓: move │ ←/→: page │ enter: open │ " + hotKeys
	}
	return renderPage("MY ACCOUNT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m accountModel) renderWallet(b *strings.Builder) {
	b.WriteString("Address: ")
	b.WriteString(m.address)
	b.WriteString("\n")
	b.WriteString("Balance: ")
	b.WriteString(m.quote.Format(m.wallet))
	b.WriteString(" ")
	b.WriteString(m.quote.Symbol)
	b.WriteString("\n")

	if m.profile != nil {
		b.WriteString("\n")
		b.WriteString("Username:   ")
		b.WriteString(m.profile.Username)
		b.WriteString("\n")
		if m.profile.Email != "" {
			b.WriteString("Email:      ")
			b.WriteString(m.profile.Email)
			b.WriteString("\n")
		}
		name := strings.TrimSpace(m.profile.Firstname + " " + m.profile.Lastname)
		if name != "" {
			b.WriteString("Name:       ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
}

func (m accountModel) renderProjects(b *strings.Builder) {
	list := m.activeList()
	if len(list) == 0 {
		if m.tab == accountTabCreated {
			b.WriteString("You have not started any projects\n")
		} else {
			b.WriteString("You have not funded any projects\n")
		}
		return
	}

	for i, p := range projectsWindow(list, m.pager) {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		state := "pending"
		switch {
		case !p.Open:
			state = "closed"
		case p.Approved:
			state = "approved"
		}
		b.WriteString(fmt.Sprintf("%s%-30s  %-8s  %s %s\n", cursor, fitText(p.Name, 30), state, m.quote.Format(p.Balance), m.quote.Symbol))
	}
	for i := 0; i < m.pager.Placeholders(len(list)); i++ {
		b.WriteString("  ")
		b.WriteString(view.PlaceholderRow)
		b.WriteString("\n")
	}

	if ind := pageIndicator(m.pager.Active, m.pager.PageCount(len(list))); ind != "" {
		b.WriteString("\n")
		b.WriteString(ind)
		b.WriteString("\n")
	}
}

func projectsWindow(list []models.Project, pager view.Pagination) []models.Project {
	from, to := pager.Window(len(list))
	return list[from:to]
}
