package tui

import (
	"strings"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/chart"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
)

// PieDeck draws a pie panel on a character canvas.
type PieDeck struct {
	panelDeck
	slices []chart.Slice
}

// NewPieDeck creates a deck for a pie panel.
func NewPieDeck(p dashboard.Panel) *PieDeck {
	return &PieDeck{
		panelDeck: panelDeck{panel: p},
		slices:    chart.Slices(p.Values()),
	}
}

func (d *PieDeck) ContentLines(ctx ViewContext) int {
	return ctx.PlotRows + len(d.panel.Legend) + tooltipReserve(ctx.Styles, d.panel.Marks)
}

// scale converts browser pixels to plot rows.
func (d *PieDeck) scale(rows int, px float64) float64 {
	return px * float64(rows) / model.PlotHeightPx
}

func (d *PieDeck) raster(ctx ViewContext, plotWidth int) pieRaster {
	return newPieRaster(plotWidth, ctx.PlotRows, d.scale(ctx.PlotRows, d.panel.OuterRadius), d.slices)
}

func (d *PieDeck) MarkAt(ctx ViewContext, plotWidth, x, y int) (int, bool) {
	return d.raster(ctx, plotWidth).sliceAt(x, y)
}

func (d *PieDeck) labels(ctx ViewContext) []pieLabel {
	inner := d.scale(ctx.PlotRows, d.panel.InnerRadius)
	outer := d.scale(ctx.PlotRows, d.panel.OuterRadius)
	offset := d.scale(ctx.PlotRows, chart.DefaultLabelOffset)

	var out []pieLabel
	for _, s := range d.slices {
		if s.Span() <= 0 {
			continue
		}
		mark := d.panel.Marks[s.Index]
		switch d.panel.Labels {
		case dashboard.LabelInsideName:
			p := chart.LabelPoint(0, 0, inner, outer, s.MidAngle())
			out = append(out, pieLabel{at: p, text: mark.Category, anchor: "middle"})
		case dashboard.LabelOutsideValue:
			p := chart.OuterLabelPoint(0, 0, outer, s.MidAngle(), offset)
			out = append(out, pieLabel{at: p, text: dashboard.FormatValue(mark.Value), anchor: chart.TextAnchor(0, p)})
		}
	}
	return out
}

func (d *PieDeck) Render(ctx ViewContext, width, height int, active bool, hoverIdx int) string {
	plotWidth := max(1, width-2)

	colors := make([]string, len(d.panel.Marks))
	for i, m := range d.panel.Marks {
		colors[i] = m.Color
	}

	plot := d.raster(ctx, plotWidth).draw(colors, hoverIdx, d.labels(ctx), ctx.Styles.Text)
	lines := strings.Split(plot, "\n")
	lines = append(lines, d.legendLines()...)
	lines = withTooltip(ctx, d, lines, d.panel.Marks, hoverIdx)

	return renderFrame(ctx, d.Title(), lines, width, height, active)
}
