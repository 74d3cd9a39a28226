package web

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/chart"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

// chartWidth is the SVG viewBox width; the height is the panel's plot height.
const chartWidth = 500

const (
	tipCharWidth = 7
	tipRowHeight = 18
	tipPadding   = 8
)

// svgRenderer draws panels as inline SVG. Shapes are painted first; every
// mark then gets a transparent hit shape and its tooltip on top, so a shown
// tooltip is never covered by another mark.
type svgRenderer struct {
	skin skin.Skin
}

type hitShape struct {
	shape  string
	anchor chart.Point
}

func (r svgRenderer) render(p dashboard.Panel) string {
	height := float64(p.PlotHeight)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart" viewBox="0 0 %d %d" preserveAspectRatio="xMidYMid meet" role="img" aria-label="%s">`,
		chartWidth, p.PlotHeight, esc(chartLabel(p)))

	var hits []hitShape
	switch p.Kind {
	case dashboard.PieChart:
		hits = r.pie(&b, p, height)
	case dashboard.HorizontalBarChart:
		hits = r.horizontalBars(&b, p, height)
	case dashboard.GroupedBarChart:
		hits = r.groupedBars(&b, p, height)
	}

	for i, h := range hits {
		if i >= len(p.Marks) {
			break
		}
		b.WriteString(`<g class="mark">`)
		b.WriteString(h.shape)
		r.tooltip(&b, p.Marks[i].Tooltip, h.anchor, height)
		b.WriteString(`</g>`)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func chartLabel(p dashboard.Panel) string {
	if p.Title != "" {
		return p.Title
	}
	return "chart"
}

func (r svgRenderer) pie(b *strings.Builder, p dashboard.Panel, height float64) []hitShape {
	cx, cy := float64(chartWidth)/2, height/2
	slices := chart.Slices(p.Values())

	hits := make([]hitShape, len(p.Marks))
	for _, s := range slices {
		mark := p.Marks[s.Index]
		path := chart.SectorPath(cx, cy, p.OuterRadius, s.StartAngle, s.EndAngle)
		if path == "" {
			continue
		}
		fmt.Fprintf(b, `<path class="shape" d="%s" fill="%s" stroke="%s" stroke-width="1"/>`,
			path, esc(mark.Color), esc(r.skin.Surface))
		hits[s.Index] = hitShape{
			shape:  fmt.Sprintf(`<path class="hit" d="%s"/>`, path),
			anchor: chart.Polar(cx, cy, p.OuterRadius*0.6, s.MidAngle()),
		}
	}

	for _, s := range slices {
		if s.Span() <= 0 {
			continue
		}
		mark := p.Marks[s.Index]
		switch p.Labels {
		case dashboard.LabelInsideName:
			pt := chart.LabelPoint(cx, cy, p.InnerRadius, p.OuterRadius, s.MidAngle())
			fmt.Fprintf(b, `<text class="label" x="%.2f" y="%.2f" fill="#ffffff" text-anchor="middle" dominant-baseline="central">%s</text>`,
				pt.X, pt.Y, esc(mark.Category))
		case dashboard.LabelOutsideValue:
			pt := chart.OuterLabelPoint(cx, cy, p.OuterRadius, s.MidAngle(), chart.DefaultLabelOffset)
			fmt.Fprintf(b, `<text class="label" x="%.2f" y="%.2f" fill="%s" text-anchor="%s" dominant-baseline="central">%s</text>`,
				pt.X, pt.Y, esc(mark.Color), chart.TextAnchor(cx, pt), esc(dashboard.FormatValue(mark.Value)))
		}
	}
	return hits
}

func (r svgRenderer) horizontalBars(b *strings.Builder, p dashboard.Panel, height float64) []hitShape {
	const (
		top    = 8.0
		right  = 24.0
		bottom = 24.0
	)
	left := 16.0 + float64(maxLen(p.Categories))*tipCharWidth
	plotW := chartWidth - left - right
	plotH := height - top - bottom

	ticks := chart.NiceTicks(p.MaxValue(), 5)
	domain := ticks[len(ticks)-1]

	if p.Grid {
		for _, t := range ticks {
			x := left + chart.Scale(t, domain, plotW)
			fmt.Fprintf(b, `<line class="grid" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, x, top, x, top+plotH)
		}
	}
	for _, t := range ticks {
		x := left + chart.Scale(t, domain, plotW)
		fmt.Fprintf(b, `<text class="tick" x="%.2f" y="%.2f" text-anchor="middle">%s</text>`,
			x, top+plotH+16, esc(dashboard.FormatValue(t)))
	}
	fmt.Fprintf(b, `<line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left, top, left, top+plotH)
	fmt.Fprintf(b, `<line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left, top+plotH, left+plotW, top+plotH)

	n := len(p.Categories)
	hits := make([]hitShape, len(p.Marks))
	if n == 0 {
		return hits
	}
	band := plotH / float64(n)
	barH := band * 0.8
	for i, cat := range p.Categories {
		y := top + float64(i)*band
		fmt.Fprintf(b, `<text class="tick" x="%.2f" y="%.2f" text-anchor="end" dominant-baseline="central">%s</text>`,
			left-6, y+band/2, esc(cat))
	}
	for i, mark := range p.Marks {
		y := top + float64(mark.Index)*band + (band-barH)/2
		w := chart.Scale(mark.Value, domain, plotW)
		rect := fmt.Sprintf(`x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, left, y, w, barH)
		fmt.Fprintf(b, `<rect class="shape" %s fill="%s"/>`, rect, esc(mark.Color))
		hits[i] = hitShape{
			shape:  fmt.Sprintf(`<rect class="hit" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`, left, top+float64(mark.Index)*band, plotW, band),
			anchor: chart.Point{X: left + w + 8, Y: y},
		}
	}
	return hits
}

func (r svgRenderer) groupedBars(b *strings.Builder, p dashboard.Panel, height float64) []hitShape {
	const (
		top    = 8.0
		right  = 16.0
		bottom = 24.0
		barGap = 4.0
	)
	ticks := chart.NiceTicks(p.MaxValue(), 5)
	domain := ticks[len(ticks)-1]

	labelW := 0
	for _, t := range ticks {
		labelW = max(labelW, len(dashboard.FormatValue(t)))
	}
	left := 12.0 + float64(labelW)*tipCharWidth
	plotW := chartWidth - left - right
	plotH := height - top - bottom

	for _, t := range ticks {
		y := top + plotH - chart.Scale(t, domain, plotH)
		fmt.Fprintf(b, `<line class="grid" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left, y, left+plotW, y)
		fmt.Fprintf(b, `<text class="tick" x="%.2f" y="%.2f" text-anchor="end" dominant-baseline="central">%s</text>`,
			left-6, y, esc(dashboard.FormatValue(t)))
	}
	fmt.Fprintf(b, `<line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left, top+plotH, left+plotW, top+plotH)

	groups, series := len(p.Categories), len(p.Series)
	hits := make([]hitShape, len(p.Marks))
	if groups == 0 || series == 0 {
		return hits
	}
	band := plotW / float64(groups)
	inner := band * 0.8
	barW := (inner - float64(series-1)*barGap) / float64(series)

	for g, cat := range p.Categories {
		fmt.Fprintf(b, `<text class="tick" x="%.2f" y="%.2f" text-anchor="middle">%s</text>`,
			left+float64(g)*band+band/2, top+plotH+16, esc(cat))
	}
	for i, mark := range p.Marks {
		g, s := i/series, i%series
		x := left + float64(g)*band + (band-inner)/2 + float64(s)*(barW+barGap)
		h := chart.Scale(mark.Value, domain, plotH)
		y := top + plotH - h
		fmt.Fprintf(b, `<rect class="shape" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
			x, y, barW, h, esc(mark.Color))
		hits[i] = hitShape{
			shape:  fmt.Sprintf(`<rect class="hit" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`, x, top, barW, plotH),
			anchor: chart.Point{X: x + barW + 6, Y: y},
		}
	}
	return hits
}

// tooltip draws a hover-revealed box next to anchor, kept inside the chart.
func (r svgRenderer) tooltip(b *strings.Builder, tip dashboard.Tooltip, anchor chart.Point, height float64) {
	if tip.Empty() {
		return
	}

	lines := len(tip.Rows)
	widest := len(tip.Header)
	if tip.Header != "" {
		lines++
	}
	for _, row := range tip.Rows {
		widest = max(widest, len(row.Name)+len(row.Value)+3)
	}
	w := float64(widest*tipCharWidth + 2*tipPadding)
	h := float64(lines*tipRowHeight + tipPadding)

	x := math.Min(math.Max(anchor.X, 4), chartWidth-w-4)
	y := math.Min(math.Max(anchor.Y, 4), height-h-4)

	b.WriteString(`<g class="tip">`)
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="4" fill="%s" stroke="%s"/>`,
		x, y, w, h, esc(r.skin.Surface), esc(r.skin.Border))

	ty := y + tipPadding/2 + tipRowHeight*0.7
	if tip.Header != "" {
		fmt.Fprintf(b, `<text class="tip-header" x="%.2f" y="%.2f">%s</text>`, x+tipPadding, ty, esc(tip.Header))
		ty += tipRowHeight
	}
	for _, row := range tip.Rows {
		if row.Separated {
			ly := ty - tipRowHeight*0.7
			fmt.Fprintf(b, `<line class="tip-rule" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, x+4, ly, x+w-4, ly)
		}
		fmt.Fprintf(b, `<text class="tip-row" x="%.2f" y="%.2f">%s : <tspan class="tip-value">%s</tspan></text>`,
			x+tipPadding, ty, esc(row.Name), esc(row.Value))
		ty += tipRowHeight
	}
	b.WriteString(`</g>`)
}

func maxLen(ss []string) int {
	n := 0
	for _, s := range ss {
		n = max(n, len(s))
	}
	return n
}

func esc(s string) string {
	return html.EscapeString(s)
}
