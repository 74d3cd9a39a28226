package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/chart"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

// PlatformDeck draws the per-platform sentiment volumes as grouped vertical
// bars: one group per platform, one bar per series.
type PlatformDeck struct {
	panelDeck
	ticks []float64
}

// NewPlatformDeck creates a deck for a grouped bar panel.
func NewPlatformDeck(p dashboard.Panel) *PlatformDeck {
	return &PlatformDeck{
		panelDeck: panelDeck{panel: p},
		ticks:     chart.NiceTicks(p.MaxValue(), 5),
	}
}

func (p *PlatformDeck) ContentLines(ctx ViewContext) int {
	return ctx.PlotRows + 1 + tooltipReserve(ctx.Styles, p.panel.Marks)
}

type platformGeometry struct {
	axisWidth  int
	chartWidth int
	barWidth   int
	series     int
	groups     int
}

// slots is the number of bar positions, counting one spacer between groups.
func (g platformGeometry) slots() int {
	if g.groups == 0 {
		return 0
	}
	return g.groups*g.series + g.groups - 1
}

func (p *PlatformDeck) geometry(plotWidth int) platformGeometry {
	labelWidth := 1
	for _, t := range p.ticks {
		labelWidth = max(labelWidth, len(dashboard.FormatValue(t)))
	}
	g := platformGeometry{
		axisWidth: labelWidth + 2,
		series:    len(p.panel.Series),
		groups:    len(p.panel.Categories),
	}
	g.chartWidth = max(1, plotWidth-g.axisWidth)
	if n := g.slots(); n > 0 {
		g.barWidth = max(1, (g.chartWidth-(n-1))/n)
	}
	return g
}

func (p *PlatformDeck) MarkAt(ctx ViewContext, plotWidth, x, y int) (int, bool) {
	g := p.geometry(plotWidth)
	if y < 0 || y >= ctx.PlotRows-1 || x < g.axisWidth || g.series == 0 {
		return 0, false
	}
	stride := g.barWidth + 1
	cx := x - g.axisWidth
	if cx%stride >= g.barWidth {
		return 0, false
	}
	slot := cx / stride
	group, pos := slot/(g.series+1), slot%(g.series+1)
	if pos == g.series || group >= g.groups {
		return 0, false
	}
	return group*g.series + pos, true
}

func (p *PlatformDeck) Render(ctx ViewContext, width, height int, active bool, hoverIdx int) string {
	lines := p.renderPlot(ctx, max(1, width-2), hoverIdx)

	legend := make([]string, 0, len(p.panel.Legend))
	for _, e := range p.panel.Legend {
		legend = append(legend, swatch(e.Color)+" "+e.Label)
	}
	lines = append(lines, lipgloss.PlaceHorizontal(max(1, width-2), lipgloss.Center, strings.Join(legend, "   ")))

	lines = withTooltip(ctx, p, lines, p.panel.Marks, hoverIdx)
	return renderFrame(ctx, p.Title(), lines, width, height, active)
}

func (p *PlatformDeck) renderPlot(ctx ViewContext, plotWidth int, hoverIdx int) []string {
	st := ctx.Styles
	g := p.geometry(plotWidth)
	chartHeight := max(1, ctx.PlotRows-1)
	tickMax := p.ticks[len(p.ticks)-1]

	bc := barchart.New(g.chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(g.barWidth),
		barchart.WithNoAxis(),
		barchart.WithMaxValue(tickMax),
	)

	for gi, category := range p.panel.Categories {
		if gi > 0 {
			bc.Push(barchart.BarData{
				Label: "",
				Values: []barchart.BarValue{
					{Name: "EMPTY", Value: 0, Style: lipgloss.NewStyle()},
				},
			})
		}
		for _, m := range p.panel.MarksFor(category) {
			color := lipgloss.Color(m.Color)
			bc.Push(barchart.BarData{
				Label: "",
				Values: []barchart.BarValue{
					{Name: m.Series, Value: m.Value, Style: lipgloss.NewStyle().Foreground(color).Background(color)},
				},
			})
		}
	}

	bc.Draw()
	chartLines := strings.Split(bc.View(), "\n")
	for len(chartLines) < chartHeight {
		chartLines = append(chartLines, "")
	}

	tickAt := make(map[int]string, len(p.ticks))
	for _, t := range p.ticks {
		row := chartHeight - 1 - int(math.Round(chart.Scale(t, tickMax, float64(chartHeight-1))))
		tickAt[row] = dashboard.FormatValue(t)
	}

	lines := make([]string, 0, ctx.PlotRows)
	for row := 0; row < chartHeight; row++ {
		label, ok := tickAt[row]
		edge := " │"
		if ok {
			edge = " ┤"
		}
		lines = append(lines, st.Help.Render(fmt.Sprintf("%*s", g.axisWidth-2, label))+st.Grid.Render(edge)+chartLines[row])
	}

	hoverCategory := ""
	if hoverIdx >= 0 && hoverIdx < len(p.panel.Marks) {
		hoverCategory = p.panel.Marks[hoverIdx].Category
	}
	stride := g.barWidth + 1
	groupWidth := g.series*stride - 1
	var axis strings.Builder
	axis.WriteString(strings.Repeat(" ", g.axisWidth))
	for gi, category := range p.panel.Categories {
		if gi > 0 {
			axis.WriteString(strings.Repeat(" ", stride+1))
		}
		style := st.Help
		if category == hoverCategory {
			style = lipgloss.NewStyle().Foreground(st.Accent).Bold(true)
		}
		axis.WriteString(style.Render(lipgloss.PlaceHorizontal(max(1, groupWidth), lipgloss.Center, category)))
	}
	lines = append(lines, axis.String())
	return lines
}
