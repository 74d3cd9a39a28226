package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

func TestFocusDeck_Wraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got, want := m.activeDeckIdx, len(m.decks)-1; got != want {
		t.Fatalf("shift+tab from first deck = %d, want %d", got, want)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.activeDeckIdx != 0 {
		t.Fatalf("tab from last deck = %d, want 0", m.activeDeckIdx)
	}
}

func TestMoveHover_KeyboardTooltip(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	if got := m.hoverIdx[1]; got != 1 {
		t.Fatalf("hovered word = %d, want 1", got)
	}
	if got := m.focusLabel(); got != "Top 5 Positive Words · Success" {
		t.Fatalf("focus label = %q", got)
	}

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.hoverIdx[1]; got != 4 {
		t.Fatalf("hover clamps at %d, want 4", got)
	}
}

func TestEnter_PushesDetailsModal(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	m.Update(cmd())

	top := m.TopModal()
	if top == nil || top.ID() != "details:"+dashboard.PanelPositiveWords {
		t.Fatalf("top modal = %v, want positive words details", top)
	}
	if view := top.View(100, 30); !strings.Contains(view, "Happy") {
		t.Fatal("details modal does not list the words")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.TopModal() != nil {
		t.Fatal("esc did not close the details modal")
	}
}

func TestHelpModal_Toggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(keyPress("?"))
	if top := m.TopModal(); top == nil || top.ID() != "help" {
		t.Fatalf("top modal = %v, want help", top)
	}
	if view := m.View(); !strings.Contains(view, "Help") {
		t.Fatal("help modal view missing title")
	}

	m.Update(keyPress("?"))
	if m.TopModal() != nil {
		t.Fatal("? did not close the help modal")
	}
}
