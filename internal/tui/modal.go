package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are managed via a stack on DashboardModel; the topmost modal
// receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalContext provides read-only context to modals.
type ModalContext struct {
	ReverseScrollWheel bool
	Styles             *Styles
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// PushModal pushes a modal unless one with the same ID is already open.
func (s *ModalStackState) PushModal(modal Modal) {
	for _, existing := range s.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	s.modalStack = append(s.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (s *ModalStackState) PopModal() {
	if len(s.modalStack) > 0 {
		s.modalStack = s.modalStack[:len(s.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (s *ModalStackState) TopModal() Modal {
	if len(s.modalStack) == 0 {
		return nil
	}
	return s.modalStack[len(s.modalStack)-1]
}

// scrollViewport applies the scroll keys and wheel events every modal
// supports. It reports whether msg was consumed.
func scrollViewport(vp *viewport.Model, msg tea.Msg, reverse bool) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			vp.ScrollUp(1)
		case "down", "j":
			vp.ScrollDown(1)
		case "pgup":
			vp.HalfPageUp()
		case "pgdown":
			vp.HalfPageDown()
		default:
			return false
		}
		return true

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false
		}
		up := msg.Button == tea.MouseButtonWheelUp
		if msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
			return false
		}
		if reverse {
			up = !up
		}
		if up {
			vp.ScrollUp(1)
		} else {
			vp.ScrollDown(1)
		}
		return true
	}
	return false
}

// renderModalFrame renders a centered, bordered, scrollable modal.
func renderModalFrame(st *Styles, vp *viewport.Model, title, content, status string, width, height int) string {
	modalWidth := max(20, width-8)
	modalHeight := max(8, height-4)

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(content)

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(st.Border).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(st.Accent).
		Bold(true).
		Render(title)

	statusBar := st.Help.Render(status)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Accent).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

func modalStatus(extra ...string) string {
	items := append([]string{"up/down/Wheel: Scroll", "PgUp/PgDn: Page"}, extra...)
	items = append(items, "ESC: Close")
	return strings.Join(items, " | ")
}
