package tui

import tea "github.com/charmbracelet/bubbletea"

// ViewContext provides read-only context to decks for rendering, so decks
// never reach into *DashboardModel.
type ViewContext struct {
	ContentWidth int
	PlotRows     int
	Styles       *Styles
}

// Action identifies what a deck or modal wants the dashboard to do.
type Action int

const (
	ActionPushModal Action = iota
)

// ActionMsg carries a request to the dashboard without mutating it directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}
