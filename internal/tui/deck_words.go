package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/chart"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

// WordsDeck displays word frequencies as horizontal bars.
type WordsDeck struct {
	panelDeck
	ticks []float64
}

// NewWordsDeck creates a deck for a horizontal bar panel.
func NewWordsDeck(p dashboard.Panel) *WordsDeck {
	return &WordsDeck{
		panelDeck: panelDeck{panel: p},
		ticks:     chart.NiceTicks(p.MaxValue(), 5),
	}
}

func (p *WordsDeck) ContentLines(ctx ViewContext) int {
	return ctx.PlotRows + tooltipReserve(ctx.Styles, p.panel.Marks)
}

// bandRows is the number of plot rows each bar owns. The last plot row holds
// the value axis.
func (p *WordsDeck) bandRows(rows int) int {
	if len(p.panel.Marks) == 0 {
		return 1
	}
	return max(1, (rows-1)/len(p.panel.Marks))
}

func (p *WordsDeck) labelWidth() int {
	w := 3
	for _, c := range p.panel.Categories {
		w = max(w, lipgloss.Width(c))
	}
	return w
}

func (p *WordsDeck) MarkAt(ctx ViewContext, plotWidth, x, y int) (int, bool) {
	if y < 0 || y >= ctx.PlotRows-1 || x < 0 || x >= plotWidth {
		return 0, false
	}
	idx := y / p.bandRows(ctx.PlotRows)
	if idx >= len(p.panel.Marks) {
		return 0, false
	}
	return idx, true
}

func (p *WordsDeck) Render(ctx ViewContext, width, height int, active bool, hoverIdx int) string {
	lines := p.renderPlot(ctx, max(1, width-2), hoverIdx)
	lines = withTooltip(ctx, p, lines, p.panel.Marks, hoverIdx)
	return renderFrame(ctx, p.Title(), lines, width, height, active)
}

func (p *WordsDeck) renderPlot(ctx ViewContext, plotWidth int, hoverIdx int) []string {
	st := ctx.Styles
	rows := ctx.PlotRows
	labelWidth := p.labelWidth()
	barArea := max(8, plotWidth-labelWidth-2)
	tickMax := p.ticks[len(p.ticks)-1]

	grid := make([]bool, barArea)
	if p.panel.Grid {
		for _, t := range p.ticks[1:] {
			col := int(math.Round(chart.Scale(t, tickMax, float64(barArea-1))))
			if col >= 0 && col < barArea {
				grid[col] = true
			}
		}
	}

	band := p.bandRows(rows)
	lines := make([]string, 0, rows)
	for row := 0; row < rows-1; row++ {
		idx := row / band
		onBar := idx < len(p.panel.Marks) && row == idx*band+band/2

		label := ""
		filled := 0
		if onBar {
			mark := p.panel.Marks[idx]
			label = mark.Category
			filled = int(math.Round(chart.Scale(mark.Value, tickMax, float64(barArea))))
			if filled == 0 && mark.Value > 0 {
				filled = 1
			}
		}

		labelStyle := lipgloss.NewStyle().Foreground(st.Text)
		if onBar && idx == hoverIdx {
			labelStyle = labelStyle.Foreground(st.Accent).Bold(true)
		}
		prefix := labelStyle.Render(fmt.Sprintf("%*s", labelWidth, label)) + st.Grid.Render(" │")

		var rest strings.Builder
		for c := filled; c < barArea; c++ {
			if grid[c] {
				rest.WriteString("┊")
			} else {
				rest.WriteByte(' ')
			}
		}

		bar := ""
		if filled > 0 {
			bar = lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.panel.Marks[idx].Color)).
				Render(strings.Repeat("█", filled))
		}
		lines = append(lines, prefix+bar+st.Grid.Render(rest.String()))
	}

	lines = append(lines, strings.Repeat(" ", labelWidth)+st.Grid.Render(" └")+
		st.Help.Render(tickAxis(p.ticks, tickMax, barArea)))
	return lines
}

// tickAxis lays tick labels out along a line of the given width, dropping
// labels that would overlap their left neighbour.
func tickAxis(ticks []float64, tickMax float64, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	next := 0
	for _, t := range ticks {
		label := []rune(dashboard.FormatValue(t))
		col := int(math.Round(chart.Scale(t, tickMax, float64(width-1))))
		start := col - len(label)/2
		start = min(max(start, 0), width-len(label))
		if start < next || start < 0 {
			continue
		}
		copy(buf[start:], label)
		next = start + len(label) + 1
	}
	return string(buf)
}
