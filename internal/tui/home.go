package tui

import (
	"strings"

	"github.com/cfdapp/crowdfund-client/models"
)

// menu entry identifiers, stable across identity changes
const (
	menuLogin     = "login"
	menuRegister  = "register"
	menuDiscover  = "discover"
	menuStart     = "start"
	menuCrowdsale = "crowdsale"
	menuAccount   = "account"
	menuAdmin     = "admin"
	menuAbout     = "about"
	menuLogout    = "logout"
	menuQuit      = "quit"
)

type menuItem struct {
	id    string
	label string
}

type homeModel struct {
	ident   models.Identity
	items   []menuItem
	idx     int
	loading bool
	status  string
}

func newHomeModel() homeModel {
	return homeModel{loading: true}
}

// setIdentity rebuilds the menu for the freshly resolved identity, clamping
// the cursor into the new item range.
func (m *homeModel) setIdentity(ident models.Identity) {
	m.ident = ident
	m.loading = false

	if !ident.LoggedIn {
		m.items = []menuItem{
			{id: menuLogin, label: "Log in"},
			{id: menuRegister, label: "Register"},
			{id: menuAbout, label: "About"},
			{id: menuQuit, label: "Quit"},
		}
	} else {
		m.items = []menuItem{
			{id: menuDiscover, label: "Discover projects"},
			{id: menuStart, label: "Start a project"},
			{id: menuCrowdsale, label: "Buy tokens"},
			{id: menuAccount, label: "My account"},
		}
		if ident.Admin {
			m.items = append(m.items, menuItem{id: menuAdmin, label: "Administration"})
		}
		m.items = append(m.items,
			menuItem{id: menuAbout, label: "About"},
			menuItem{id: menuLogout, label: "Log out"},
			menuItem{id: menuQuit, label: "Quit"},
		)
	}

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m homeModel) current() (menuItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return menuItem{}, false
	}
	return m.items[m.idx], true
}

func (m homeModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Resolving account...\n")
		return renderPage("CROWDFUND", strings.TrimRight(b.String(), "\n"), "")
	}

	b.WriteString("Account: ")
	b.WriteString(shortAddress(m.ident.Address))
	if m.ident.LoggedIn {
		b.WriteString("  (")
		b.WriteString(m.ident.DisplayName())
		b.WriteString(")")
	}
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item.label)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("CROWDFUND", strings.TrimRight(b.String(), "\n"), "↑/↓: move │ enter: select")
}
