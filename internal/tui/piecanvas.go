package tui

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/chart"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// pieRaster maps pie geometry onto terminal cells. Radius is measured in rows;
// the horizontal radius is stretched by cellAspect.
type pieRaster struct {
	width  int
	height int
	radius float64
	slices []chart.Slice
}

type pieLabel struct {
	at     chart.Point // relative to the pie center, in rows
	text   string
	anchor string
}

func newPieRaster(width, height int, radius float64, slices []chart.Slice) pieRaster {
	return pieRaster{width: width, height: height, radius: radius, slices: slices}
}

func (r pieRaster) center() (float64, float64) {
	return float64(r.width) / 2, float64(r.height) / 2
}

// sliceAt hit-tests a cell against the pie.
func (r pieRaster) sliceAt(x, y int) (int, bool) {
	cx, cy := r.center()
	dx := (float64(x) + 0.5 - cx) / cellAspect
	dy := float64(y) + 0.5 - cy
	if math.Hypot(dx, dy) > r.radius {
		return 0, false
	}
	return chart.SliceAt(r.slices, chart.AngleAt(0, 0, dx, dy))
}

func (r pieRaster) cell(p chart.Point) (int, int) {
	cx, cy := r.center()
	return int(math.Floor(cx + p.X*cellAspect)), int(math.Floor(cy + p.Y))
}

// draw paints the slices and labels. When a slice is hovered the others are
// drawn with a lighter shade.
func (r pieRaster) draw(colors []string, hover int, labels []pieLabel, text lipgloss.Color) string {
	c := canvas.New(r.width, r.height)

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			idx, ok := r.sliceAt(x, y)
			if !ok {
				continue
			}
			ch := '█'
			if hover >= 0 && idx != hover {
				ch = '▒'
			}
			c.SetCell(canvas.Point{X: x, Y: y}, canvas.Cell{
				Rune:  ch,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx])),
			})
		}
	}

	for _, l := range labels {
		x, y := r.cell(l.at)
		w := ansi.StringWidth(l.text)
		switch l.anchor {
		case "end":
			x -= w
		case "middle":
			x -= w / 2
		}
		if y < 0 || y >= r.height {
			continue
		}
		for i, ch := range []rune(l.text) {
			px := x + i
			if px < 0 || px >= r.width {
				continue
			}
			style := lipgloss.NewStyle().Foreground(text).Bold(true)
			if idx, ok := r.sliceAt(px, y); ok {
				style = style.Background(lipgloss.Color(colors[idx]))
			}
			c.SetCell(canvas.Point{X: px, Y: y}, canvas.Cell{Rune: ch, Style: style})
		}
	}

	return c.View()
}
