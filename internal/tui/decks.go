package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

// Deck renders one chart panel of the composed page.
type Deck interface {
	ID() string
	Title() string
	ContentLines(ctx ViewContext) int
	ItemCount() int
	Render(ctx ViewContext, width, height int, active bool, hoverIdx int) string
	// MarkAt maps a cell inside the plot area to a mark index.
	MarkAt(ctx ViewContext, plotWidth, x, y int) (int, bool)
	Tooltip(idx int) dashboard.Tooltip
	MarkName(idx int) string
	OnSelect(ctx ViewContext, idx int) tea.Cmd // returns nil or ActionMsg
}

// Frame geometry shared by every deck: a rounded border plus one column of
// horizontal padding, and a title row when the panel has a title.
const (
	deckFrameX = 2
	deckFrameW = 4
)

// newDeck picks the deck implementation for a panel kind.
func newDeck(p dashboard.Panel) Deck {
	switch p.Kind {
	case dashboard.PieChart:
		return NewPieDeck(p)
	case dashboard.HorizontalBarChart:
		return NewWordsDeck(p)
	case dashboard.GroupedBarChart:
		return NewPlatformDeck(p)
	default:
		return nil
	}
}

// plotTop is the row of the plot area inside a deck box.
func plotTop(d Deck) int {
	if d.Title() != "" {
		return 2
	}
	return 1
}

// panelDeck carries the behavior every chart deck shares.
type panelDeck struct {
	panel dashboard.Panel
}

func (d *panelDeck) ID() string     { return d.panel.ID }
func (d *panelDeck) Title() string  { return d.panel.Title }
func (d *panelDeck) ItemCount() int { return len(d.panel.Marks) }

func (d *panelDeck) Tooltip(idx int) dashboard.Tooltip {
	if idx < 0 || idx >= len(d.panel.Marks) {
		return dashboard.Tooltip{}
	}
	return d.panel.Marks[idx].Tooltip
}

// MarkName names a mark by its category and, for grouped bars, its series.
func (d *panelDeck) MarkName(idx int) string {
	if idx < 0 || idx >= len(d.panel.Marks) {
		return ""
	}
	m := d.panel.Marks[idx]
	for _, s := range d.panel.Series {
		if s.Key == m.Series && len(d.panel.Series) > 1 {
			return m.Category + " " + s.Name
		}
	}
	return m.Category
}

func (d *panelDeck) OnSelect(_ ViewContext, _ int) tea.Cmd {
	return actionMsg(ActionMsg{Action: ActionPushModal, Payload: NewDetailsModal(d.panel)})
}

func (d *panelDeck) legendLines() []string {
	lines := make([]string, 0, len(d.panel.Legend))
	for _, e := range d.panel.Legend {
		lines = append(lines, swatch(e.Color)+" "+e.Label)
	}
	return lines
}

// renderFrame wraps deck content in the section border, with the title on top.
func renderFrame(ctx ViewContext, title string, body []string, width, height int, active bool) string {
	style := ctx.Styles.Section.Width(width).Height(height).MaxHeight(height + 2)
	if active {
		style = ctx.Styles.ActiveSection.Width(width).Height(height).MaxHeight(height + 2)
	}

	var parts []string
	if title != "" {
		parts = append(parts, ctx.Styles.DeckTitle.Render(title))
	}
	parts = append(parts, strings.Join(body, "\n"))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// withTooltip appends the hovered mark's tooltip below the plot, padded to the
// deck's tooltip reserve.
func withTooltip(ctx ViewContext, d Deck, lines []string, marks []dashboard.Mark, hoverIdx int) []string {
	reserve := tooltipReserve(ctx.Styles, marks)
	tip := renderTooltip(ctx.Styles, d.Tooltip(hoverIdx))
	var tipLines []string
	if tip != "" {
		tipLines = strings.Split(tip, "\n")
	}
	for len(tipLines) < reserve {
		tipLines = append(tipLines, "")
	}
	return append(lines, tipLines...)
}
