package tui

import (
	"fmt"
	"strings"

	"github.com/cfdapp/crowdfund-client/internal/view"
	"github.com/cfdapp/crowdfund-client/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type discoverModel struct {
	projects []models.Project
	pager    view.Pagination
	idx      int
	loading  bool
	spinner  spinner.Model
}

func newDiscoverModel() discoverModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return discoverModel{
		pager:   view.NewPagination(view.DefaultPerPage),
		spinner: s,
		loading: true,
	}
}

// setProjects replaces the list, re-clamps the page and resets the cursor.
func (m *discoverModel) setProjects(projects []models.Project) {
	m.projects = projects
	m.loading = false
	m.pager.Reclamp(len(projects))
	m.idx = 0
}

// current returns the selected project of the active page.
func (m discoverModel) current() (models.Project, bool) {
	from, to := m.pager.Window(len(m.projects))
	i := from + m.idx
	if i < from || i >= to {
		return models.Project{}, false
	}
	return m.projects[i], true
}

func (m *discoverModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *discoverModel) moveDown() {
	from, to := m.pager.Window(len(m.projects))
	if m.idx < to-from-1 {
		m.idx++
	}
}

func (m *discoverModel) pageLeft() {
	m.pager.SetPage(m.pager.Active-1, len(m.projects))
	m.idx = 0
}

func (m *discoverModel) pageRight() {
	m.pager.SetPage(m.pager.Active+1, len(m.projects))
	m.idx = 0
}

func (m discoverModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading projects...\n")
		return renderPage("DISCOVER", strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	if len(m.projects) == 0 {
		b.WriteString("No approved projects yet\n")
		return renderPage("DISCOVER", strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	from, to := m.pager.Window(len(m.projects))
	for i := from; i < to; i++ {
		p := m.projects[i]
		cursor := "  "
		if i-from == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-30s  %3d%% funded  by %s\n",
			cursor, fitText(p.Name, 30), p.PercentFunded(), nameOrAddress(p.OwnerName, shortAddress(p.OwnerAddress))))
	}
	for i := 0; i < m.pager.Placeholders(len(m.projects)); i++ {
		b.WriteString("  ")
		b.WriteString(view.PlaceholderRow)
		b.WriteString("\n")
	}

	if ind := pageIndicator(m.pager.Active, m.pager.PageCount(len(m.projects))); ind != "" {
		b.WriteString("\n")
		b.WriteString(ind)
		b.WriteString("\n")
	}

	return renderPage("DISCOVER", strings.TrimRight(b.String(), "\n"), "↑/↓: move │ ←/→: page │ enter: open │ esc: back")
}
