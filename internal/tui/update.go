package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

const (
	headerHeight = 1
	statusHeight = 1
	wheelStep    = 3
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.Width = msg.Width
		m.content.Height = max(1, msg.Height-headerHeight-statusHeight)

	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = m.handleMouseEvent(msg)

	case ActionMsg:
		if msg.Action == ActionPushModal {
			switch modal := msg.Payload.(type) {
			case *DetailsModal:
				modal.ctx = m.modalContext()
				m.PushModal(modal)
			case Modal:
				m.PushModal(modal)
			}
		}
	}

	m.refreshContent()
	return m, cmd
}

// refreshContent re-renders the content column into the viewport.
func (m *DashboardModel) refreshContent() {
	if m.width <= 0 {
		return
	}
	m.content.SetContent(m.renderContent(m.width))
}

// handleMouseEvent processes mouse interactions. While the sidebar is open the
// overlay owns the screen: only the close control and the overlay itself
// react, everything else is swallowed.
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return cmd
	}

	if m.state.SidebarOpen {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			switch {
			case m.inZone(zoneClose, msg):
				m.apply(dashboard.ActionClose)
			case m.inZone(zoneOverlay, msg):
				m.apply(dashboard.ActionOverlay)
			}
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.inZone(zoneMenu, msg) {
				m.apply(dashboard.ActionMenu)
				return nil
			}
			if idx, ok := m.hoverAt(msg.X, msg.Y); ok {
				m.activeDeckIdx = idx
			}

		case tea.MouseButtonWheelUp:
			if m.reverseScrollWheel {
				m.content.ScrollDown(wheelStep)
			} else {
				m.content.ScrollUp(wheelStep)
			}
			m.hoverAt(msg.X, msg.Y)

		case tea.MouseButtonWheelDown:
			if m.reverseScrollWheel {
				m.content.ScrollUp(wheelStep)
			} else {
				m.content.ScrollDown(wheelStep)
			}
			m.hoverAt(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		m.hoverAt(msg.X, msg.Y)
	}

	return nil
}

// hoverAt hovers the mark under a screen cell and clears every other hover.
// It returns the deck under the cell, if any.
func (m *DashboardModel) hoverAt(x, y int) (int, bool) {
	m.clearHover()

	if y < headerHeight || y >= headerHeight+m.content.Height {
		return 0, false
	}
	l := m.layoutContent(m.width)
	idx, px, py, ok := m.deckAt(l, x, y-headerHeight+m.content.YOffset)
	if !ok {
		return 0, false
	}

	plotWidth := l.rects[idx].w - deckFrameW
	if mark, hit := m.decks[idx].MarkAt(m.viewContext(), plotWidth, px, py); hit {
		m.hoverIdx[idx] = mark
	}
	return idx, true
}
