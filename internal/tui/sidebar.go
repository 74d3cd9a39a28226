package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 26

// renderSidebar renders the navigation panel. Links are placeholders and do
// not react to input; only the close control does.
func (m *DashboardModel) renderSidebar(height int) string {
	st := m.styles
	sb := m.page.Sidebar
	inner := sidebarWidth - 3 // right border + horizontal padding

	title := st.SidebarTitle.Render(sb.Title)
	closeBtn := m.zones.Mark(zoneClose, st.Button.Render("✕"))
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(closeBtn))
	top := title + st.Link.Render(strings.Repeat(" ", gap)) + closeBtn

	lines := []string{top, ""}
	for _, section := range sb.Sections {
		if section.Heading != "" {
			lines = append(lines, "", st.SidebarHeading.Render(strings.ToUpper(section.Heading)))
		}
		for _, link := range section.Links {
			lines = append(lines, st.Link.Render("  "+link.Label))
		}
	}

	return st.Sidebar.
		Width(sidebarWidth - 1).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
