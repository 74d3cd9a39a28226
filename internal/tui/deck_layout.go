package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Below this content width two-column sections stack vertically.
const twoColumnMinWidth = 80

// deckRect is a deck's outer box in content coordinates.
type deckRect struct {
	x, y, w, h int
}

type layoutRow struct {
	y           int
	decks       []int
	innerHeight int
}

type layoutHeading struct {
	y    int
	text string
}

// contentLayout places section headings and deck rows in the scrollable
// content column. Rendering and mouse hit-testing share it.
type contentLayout struct {
	rects    []deckRect
	rows     []layoutRow
	headings []layoutHeading
	height   int
}

func (m *DashboardModel) deckInnerHeight(idx int) int {
	d := m.decks[idx]
	return plotTop(d) - 1 + d.ContentLines(m.viewContext())
}

// layoutContent flows the page sections top to bottom. A section with two
// columns places its decks side by side with a one-cell gap.
func (m *DashboardModel) layoutContent(width int) contentLayout {
	var l contentLayout
	l.rects = make([]deckRect, len(m.decks))

	y := 0
	idx := 0
	for _, s := range m.page.Sections {
		if s.Heading != "" {
			l.headings = append(l.headings, layoutHeading{y: y, text: s.Heading})
			y++
		}

		cols := max(1, s.Columns)
		if width < twoColumnMinWidth {
			cols = 1
		}
		boxWidth := width
		if cols > 1 {
			boxWidth = (width - (cols - 1)) / cols
		}

		n := len(s.Panels)
		for start := 0; start < n && idx+start < len(m.decks); start += cols {
			row := layoutRow{y: y}
			for j := 0; j < cols && start+j < n && idx+start+j < len(m.decks); j++ {
				deckIdx := idx + start + j
				row.decks = append(row.decks, deckIdx)
				row.innerHeight = max(row.innerHeight, m.deckInnerHeight(deckIdx))
			}
			for j, deckIdx := range row.decks {
				l.rects[deckIdx] = deckRect{
					x: j * (boxWidth + 1),
					y: y,
					w: boxWidth,
					h: row.innerHeight + 2,
				}
			}
			l.rows = append(l.rows, row)
			y += row.innerHeight + 2
		}
		idx += n
		y++
	}
	l.height = y
	return l
}

// deckAt resolves content coordinates to a deck and a plot-local cell.
func (m *DashboardModel) deckAt(l contentLayout, x, y int) (idx, px, py int, ok bool) {
	for i, r := range l.rects {
		if x < r.x || x >= r.x+r.w || y < r.y || y >= r.y+r.h {
			continue
		}
		return i, x - r.x - deckFrameX, y - r.y - plotTop(m.decks[i]), true
	}
	return 0, 0, 0, false
}

// renderContent renders every section into the scrollable content column.
func (m *DashboardModel) renderContent(width int) string {
	if len(m.decks) == 0 {
		return m.styles.Help.Render("No charts")
	}

	l := m.layoutContent(width)
	lines := make([]string, l.height)

	for _, h := range l.headings {
		lines[h.y] = m.styles.Heading.Render(h.text)
	}

	ctx := m.viewContext()
	for _, row := range l.rows {
		boxes := make([]string, 0, len(row.decks)*2)
		for j, deckIdx := range row.decks {
			if j > 0 {
				boxes = append(boxes, " ")
			}
			r := l.rects[deckIdx]
			active := deckIdx == m.activeDeckIdx
			boxes = append(boxes, m.decks[deckIdx].Render(ctx, r.w-2, row.innerHeight, active, m.hoverIdx[deckIdx]))
		}
		rendered := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, boxes...), "\n")
		for i, line := range rendered {
			if row.y+i < len(lines) {
				lines[row.y+i] = line
			}
		}
	}

	return strings.Join(lines, "\n")
}
