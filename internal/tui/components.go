package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the header bar: menu control, brand, an inert search
// box and an inert profile button.
func (m *DashboardModel) renderHeader(w int) string {
	st := m.styles
	h := m.page.Header

	menu := m.zones.Mark(zoneMenu, st.Button.Render(" ≡ "))
	brand := st.Header.Bold(true).Render(" Social Pulse ")
	search := st.Input.Width(min(32, max(12, w/3))).Render("⌕ " + h.SearchPlaceholder)
	profile := st.Button.Render(" ◉ ")

	left := menu + brand
	used := lipgloss.Width(left) + lipgloss.Width(search) + lipgloss.Width(profile)
	free := max(0, w-used)
	leftGap := free / 2
	rightGap := free - leftGap

	line := left +
		st.Header.Render(strings.Repeat(" ", leftGap)) +
		search +
		st.Header.Render(strings.Repeat(" ", rightGap)) +
		profile
	return st.Header.Width(w).MaxWidth(w).Render(line)
}

// renderStatusLine renders the bottom status line: the focused chart and
// hovered mark on the left, key hints on the right.
func (m *DashboardModel) renderStatusLine(w int) string {
	st := m.styles
	baseStyle := st.Status

	leftText := lipgloss.NewStyle().Background(st.Surface).Foreground(st.Accent).Bold(true).Render(" PULSE ")
	if focus := m.focusLabel(); focus != "" {
		leftText += baseStyle.Render(" " + focus)
	}

	hints := []string{"m: " + strings.ToLower(m.page.Header.MenuLabel)}
	if m.state.SidebarOpen {
		hints = []string{"x: close sidebar"}
	}
	hints = append(hints, "?: help", "q: quit")
	rightText := baseStyle.Render(strings.Join(hints, "  ") + " ")

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	if leftWidth+rightWidth >= w {
		return baseStyle.Width(w).MaxWidth(w).Render(leftText)
	}

	center := baseStyle.Width(w - leftWidth - rightWidth).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, leftText, center, rightText)
}

// focusLabel describes the focused deck and its hovered mark.
func (m *DashboardModel) focusLabel() string {
	if m.state.SidebarOpen || len(m.decks) == 0 {
		return ""
	}
	d := m.decks[m.activeDeckIdx]
	label := d.Title()
	if label == "" {
		label = m.sectionHeading(m.activeDeckIdx)
	}
	if h := m.hoverIdx[m.activeDeckIdx]; h >= 0 {
		label += " · " + d.MarkName(h)
	}
	return label
}

// sectionHeading returns the heading of the section holding a deck.
func (m *DashboardModel) sectionHeading(deckIdx int) string {
	idx := 0
	for _, s := range m.page.Sections {
		if deckIdx < idx+len(s.Panels) {
			if s.Heading == "" {
				return "Traffic Sources"
			}
			return s.Heading
		}
		idx += len(s.Panels)
	}
	return ""
}
