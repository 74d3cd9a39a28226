// Package dashboard composes the analytics dashboard as a display tree.
// Compose is a pure function of the dataset catalog and the view state;
// both presentation surfaces re-invoke it whenever the state changes.
package dashboard

// Action identifies a user control that changes the view state.
type Action int

const (
	ActionMenu    Action = iota // header menu control
	ActionClose                 // close control inside the sidebar
	ActionOverlay               // click on the dimming overlay
)

func (a Action) String() string {
	switch a {
	case ActionMenu:
		return "menu"
	case ActionClose:
		return "close"
	case ActionOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// ViewState is the only interactive state of the dashboard. The zero value
// is the initial state: sidebar closed.
type ViewState struct {
	SidebarOpen bool `json:"sidebar_open"`
}

// ParseViewState reads the sidebar state from its string form; anything
// other than "open" is closed.
func ParseViewState(s string) ViewState {
	return ViewState{SidebarOpen: s == "open"}
}

func (s ViewState) String() string {
	if s.SidebarOpen {
		return "open"
	}
	return "closed"
}

// Toggle flips the sidebar.
func (s ViewState) Toggle() ViewState {
	return ViewState{SidebarOpen: !s.SidebarOpen}
}

// Apply returns the state after a control is activated. The menu and close
// controls toggle. The overlay only exists while the sidebar is open, so
// activating it from the closed state changes nothing.
func (s ViewState) Apply(a Action) ViewState {
	switch a {
	case ActionMenu, ActionClose:
		return s.Toggle()
	case ActionOverlay:
		if !s.SidebarOpen {
			return s
		}
		return s.Toggle()
	default:
		return s
	}
}
