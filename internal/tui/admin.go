package tui

import (
	"fmt"
	"strings"

	"github.com/cfdapp/crowdfund-client/internal/view"
	"github.com/cfdapp/crowdfund-client/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type adminTab int

const (
	adminTabProjects adminTab = iota
	adminTabUsers
)

type adminModel struct {
	tab        adminTab
	projects   []models.Project
	users      []models.Account
	pager      view.Pagination
	idx        int
	loading    bool
	submitting bool
	spinner    spinner.Model
	status     string
}

func newAdminModel() adminModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return adminModel{
		pager:   view.NewPagination(view.DefaultPerPage),
		spinner: s,
		loading: true,
	}
}

func (m *adminModel) setData(projects []models.Project, users []models.Account) {
	m.projects = projects
	m.users = users
	m.loading = false
	m.pager.Reclamp(m.itemCount())
	m.idx = 0
}

func (m adminModel) itemCount() int {
	if m.tab == adminTabUsers {
		return len(m.users)
	}
	return len(m.projects)
}

func (m *adminModel) switchTab() {
	if m.tab == adminTabProjects {
		m.tab = adminTabUsers
	} else {
		m.tab = adminTabProjects
	}
	m.pager = view.NewPagination(view.DefaultPerPage)
	m.idx = 0
	m.status = ""
}

// currentProject returns the selected project when the projects tab is active.
func (m adminModel) currentProject() (models.Project, bool) {
	if m.tab != adminTabProjects {
		return models.Project{}, false
	}
	from, to := m.pager.Window(len(m.projects))
	i := from + m.idx
	if i < from || i >= to {
		return models.Project{}, false
	}
	return m.projects[i], true
}

func (m *adminModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *adminModel) moveDown() {
	from, to := m.pager.Window(m.itemCount())
	if m.idx < to-from-1 {
		m.idx++
	}
}

func (m *adminModel) pageLeft() {
	m.pager.SetPage(m.pager.Active-1, m.itemCount())
	m.idx = 0
}

func (m *adminModel) pageRight() {
	m.pager.SetPage(m.pager.Active+1, m.itemCount())
	m.idx = 0
}

func (m adminModel) View() string {
	var b strings.Builder

	if m.tab == adminTabProjects {
		b.WriteString("[Projects]  Users \n\n")
	} else {
		b.WriteString(" Projects  [Users]\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
		return renderPage("ADMINISTRATION", strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	switch m.tab {
	case adminTabProjects:
		m.renderProjects(&b)
	case adminTabUsers:
		m.renderUsers(&b)
	}

	if ind := pageIndicator(m.pager.Active, m.pager.PageCount(m.itemCount())); ind != "" {
		b.WriteString("\n")
		b.WriteString(ind)
		b.WriteString("\n")
	}

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

	hotKeys := "↑/↓: move │ ←/→: page │ tab: switch │ esc: back"
	if m.tab == adminTabProjects {
		hotKeys = "a: approve │ " + hotKeys
	}
	return renderPage("ADMINISTRATION", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m adminModel) renderProjects(b *strings.Builder) {
	if len(m.projects) == 0 {
		b.WriteString("No projects\n")
		return
	}

	from, to := m.pager.Window(len(m.projects))
	for i := from; i < to; i++ {
		p := m.projects[i]
		cursor := "  "
		if i-from == m.idx {
			cursor = "> "
		}
		state := "pending"
		if p.Approved {
			state = "approved"
		}
		b.WriteString(fmt.Sprintf("%s%-30s  %-8s  by %s\n",
			cursor, fitText(p.Name, 30), state, nameOrAddress(p.OwnerName, shortAddress(p.OwnerAddress))))
	}
	for i := 0; i < m.pager.Placeholders(len(m.projects)); i++ {
		b.WriteString("  ")
		b.WriteString(view.PlaceholderRow)
		b.WriteString("\n")
	}
}

func (m adminModel) renderUsers(b *strings.Builder) {
	if len(m.users) == 0 {
		b.WriteString("No registered users\n")
		return
	}

	from, to := m.pager.Window(len(m.users))
	for i := from; i < to; i++ {
		u := m.users[i]
		cursor := "  "
		if i-from == m.idx {
			cursor = "> "
		}
		username, email := "-", "-"
		if u.Profile != nil {
			username = nameOrAddress(u.Profile.Username, "-")
			if u.Profile.Email != "" {
				email = u.Profile.Email
			}
		}
		b.WriteString(fmt.Sprintf("%s%-14s  %-20s  %s\n", cursor, shortAddress(u.Address), fitText(username, 20), email))
	}
	for i := 0; i < m.pager.Placeholders(len(m.users)); i++ {
		b.WriteString("  ")
		b.WriteString(view.PlaceholderRow)
		b.WriteString("\n")
	}
}
