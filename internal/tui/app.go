package tui

import tea "github.com/charmbracelet/bubbletea"

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      []Page
	activePage int
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	return &App{pages: pages}
}

// ActivePage returns the page currently receiving input.
func (a *App) ActivePage() Page {
	if a.activePage < 0 || a.activePage >= len(a.pages) {
		return nil
	}
	return a.pages[a.activePage]
}

func (a *App) Init() tea.Cmd {
	if p := a.ActivePage(); p != nil {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Every page tracks the window size, so a page switch renders at the
	// right dimensions immediately.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
		cmds := make([]tea.Cmd, 0, len(a.pages))
		for _, p := range a.pages {
			cmd, _ := p.Update(wsm)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	p := a.ActivePage()
	if p == nil {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav == nil {
		return a, cmd
	}

	for i, candidate := range a.pages {
		if candidate.ID() == nav.PageID {
			a.activePage = i
			return a, tea.Batch(cmd, candidate.Init())
		}
	}
	return a, cmd
}

func (a *App) View() string {
	if p := a.ActivePage(); p != nil {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
