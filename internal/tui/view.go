package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	minWidth  = 60
	minHeight = 20
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	if m.width < minWidth || m.height < minHeight {
		return "Terminal too small. Resize to at least 60x20."
	}

	return m.zones.Scan(m.renderDashboard())
}

// renderDashboard renders header, content column and status line, with the
// sidebar and overlay on top while the sidebar is open.
func (m *DashboardModel) renderDashboard() string {
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(m.width),
		m.content.View(),
		m.renderStatusLine(m.width),
	)

	if !m.page.Overlay {
		return base
	}
	return m.renderOverlay(base)
}

// renderOverlay draws the sidebar at the left edge and dims the rest of the
// screen. Stripping the colors also strips the zone markers of the content,
// so nothing under the overlay stays clickable.
func (m *DashboardModel) renderOverlay(base string) string {
	sidebar := m.renderSidebar(m.height)
	sw := lipgloss.Width(sidebar)
	rest := max(0, m.width-sw)

	lines := strings.Split(ansi.Strip(base), "\n")
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	lines = lines[:m.height]
	for i, line := range lines {
		lines[i] = ansi.Cut(line, sw, m.width)
	}

	dimmed := m.styles.Dimmed.
		Width(rest).
		Height(m.height).
		MaxHeight(m.height).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.zones.Mark(zoneOverlay, dimmed))
}
