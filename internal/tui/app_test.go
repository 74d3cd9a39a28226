package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubPage struct {
	id     string
	nav    *PageNav
	width  int
	inited int
}

func (p *stubPage) ID() string { return p.id }
func (p *stubPage) Init() tea.Cmd {
	p.inited++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		p.width = wsm.Width
		return nil, nil
	}
	return nil, p.nav
}

func (p *stubPage) View(_, _ int) string { return p.id }

func TestApp_BroadcastsWindowSize(t *testing.T) {
	t.Parallel()

	a, b := &stubPage{id: "a"}, &stubPage{id: "b"}
	app := NewApp(a, b)
	app.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	if a.width != 90 || b.width != 90 {
		t.Fatalf("widths = %d, %d; want 90 for every page", a.width, b.width)
	}
}

func TestApp_NavigatesByPageID(t *testing.T) {
	t.Parallel()

	a, b := &stubPage{id: "a", nav: &PageNav{PageID: "b"}}, &stubPage{id: "b"}
	app := NewApp(a, b)

	app.Update(keyPress("z"))
	if got := app.ActivePage().ID(); got != "b" {
		t.Fatalf("active page = %q, want b", got)
	}
	if b.inited != 1 {
		t.Fatalf("b initialized %d times, want 1", b.inited)
	}

	a.nav = &PageNav{PageID: "missing"}
	b.nav = &PageNav{PageID: "missing"}
	app.Update(keyPress("z"))
	if got := app.ActivePage().ID(); got != "b" {
		t.Fatalf("unknown page id switched to %q", got)
	}
}

func TestApp_DashboardPage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	app := NewApp(NewDashboardPage(m))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if !strings.Contains(app.View(), "Social Pulse") {
		t.Fatal("dashboard view missing the header brand")
	}
	if _, cmd := app.Update(keyPress("q")); cmd == nil {
		t.Fatal("q did not return a quit command")
	}

	if got := NewApp().View(); got != "No active page" {
		t.Fatalf("empty app view = %q", got)
	}
}
