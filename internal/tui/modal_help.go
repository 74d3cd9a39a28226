package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Social Pulse

Sentiment, word frequency, platform volume and perception charts for
social traffic.

## Navigation

| Key | Action |
|-----|--------|
| ` + "`m`" + ` or click ≡ | Open or close the sidebar |
| ` + "`x`" + ` or click ✕ | Close the sidebar |
| click dimmed area | Close the sidebar |
| ` + "`tab`" + ` / ` + "`shift+tab`" + ` | Focus next / previous chart |
| ` + "`↑/k`" + ` ` + "`↓/j`" + ` | Move the highlighted mark |
| ` + "`enter`" + ` | Show the chart's data |
| ` + "`pgup`" + ` / ` + "`pgdn`" + ` / wheel | Scroll the dashboard |
| ` + "`home`" + ` / ` + "`end`" + ` | Jump to top / bottom |
| ` + "`?`" + ` | Toggle this help |
| ` + "`q`" + ` / ` + "`ctrl+c`" + ` | Quit |

## Mouse

Hover a slice or a bar to see its tooltip. While the sidebar is open the
rest of the screen is dimmed and ignores the mouse; click it to close the
sidebar.

## Charts

- **Traffic sentiment**: share of neutral, negative and positive traffic.
  The tooltip lists the sources behind each share.
- **Words Analysis**: the five most frequent positive and negative words.
- **Post vs Audience Analysis**: positive, neutral and negative volume per
  platform.
- **User's Perception Analysis**: reasons given by users, by share.
`

// HelpModal displays the key reference rendered from markdown.
type HelpModal struct {
	ctx      ModalContext
	viewport viewport.Model
	width    int
	rendered string
}

// NewHelpModal creates a help modal.
func NewHelpModal(ctx ModalContext) *HelpModal {
	return &HelpModal{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if scrollViewport(&h.viewport, msg, h.ctx.ReverseScrollWheel) {
		return false, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "?", "escape", "esc", "q":
			return true, nil
		}
	}
	return false, nil
}

// render converts the markdown once per content width.
func (h *HelpModal) render(width int) string {
	if h.rendered != "" && h.width == width {
		return h.rendered
	}
	h.width = width
	h.rendered = renderMarkdown(helpMarkdown, width)
	return h.rendered
}

func (h *HelpModal) View(width, height int) string {
	contentWidth := max(20, width-8) - 4
	return renderModalFrame(h.ctx.Styles, &h.viewport, "Help", h.render(contentWidth),
		modalStatus("?: Toggle Help"), width, height)
}

// renderMarkdown renders md for a terminal of the given width, falling back
// to the raw text when glamour cannot build a renderer.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
