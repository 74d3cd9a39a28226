package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

// handleKeyPress dispatches key events: modal stack first, then sidebar
// controls, then deck navigation. Deck navigation is unavailable while the
// sidebar is open. Escape is deliberately unbound on the dashboard.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return cmd
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m.modalContext()))
		return nil

	case key.Matches(msg, k.Menu):
		m.apply(dashboard.ActionMenu)
		return nil

	case key.Matches(msg, k.Close):
		// The close control only exists inside the open sidebar.
		if m.state.SidebarOpen {
			m.apply(dashboard.ActionClose)
		}
		return nil
	}

	if m.state.SidebarOpen || len(m.decks) == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, k.NextDeck):
		m.focusDeck(m.activeDeckIdx + 1)

	case key.Matches(msg, k.PrevDeck):
		m.focusDeck(m.activeDeckIdx - 1)

	case key.Matches(msg, k.Up):
		m.moveHover(-1)

	case key.Matches(msg, k.Down):
		m.moveHover(1)

	case key.Matches(msg, k.Enter):
		return m.decks[m.activeDeckIdx].OnSelect(m.viewContext(), m.hoverIdx[m.activeDeckIdx])

	case key.Matches(msg, k.Home):
		m.content.GotoTop()

	case key.Matches(msg, k.End):
		m.content.GotoBottom()

	case key.Matches(msg, k.PageUp):
		m.content.HalfPageUp()

	case key.Matches(msg, k.PageDown):
		m.content.HalfPageDown()
	}

	return nil
}

// focusDeck moves focus to a deck, wrapping around, and scrolls it into view.
func (m *DashboardModel) focusDeck(idx int) {
	n := len(m.decks)
	if n == 0 {
		return
	}
	idx = ((idx % n) + n) % n
	if idx != m.activeDeckIdx {
		m.clearHover()
	}
	m.activeDeckIdx = idx
	m.ensureDeckVisible(idx)
}

func (m *DashboardModel) ensureDeckVisible(idx int) {
	if m.width <= 0 || m.content.Height <= 0 {
		return
	}
	m.refreshContent()
	r := m.layoutContent(m.width).rects[idx]
	switch {
	case r.y < m.content.YOffset:
		m.content.SetYOffset(r.y)
	case r.y+r.h > m.content.YOffset+m.content.Height:
		m.content.SetYOffset(r.y + r.h - m.content.Height)
	}
}

// moveHover steps the hovered mark of the focused deck. The first step picks
// the first or last mark.
func (m *DashboardModel) moveHover(delta int) {
	idx := m.activeDeckIdx
	n := m.decks[idx].ItemCount()
	if n == 0 {
		return
	}

	h := m.hoverIdx[idx]
	switch {
	case h < 0 && delta > 0:
		h = 0
	case h < 0:
		h = n - 1
	default:
		h = min(max(h+delta, 0), n-1)
	}

	m.clearHover()
	m.hoverIdx[idx] = h
}
