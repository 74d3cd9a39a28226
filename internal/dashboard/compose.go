package dashboard

import (
	"strconv"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
)

// Panel IDs.
const (
	PanelSentiment     = "sentiment"
	PanelPositiveWords = "positive-words"
	PanelNegativeWords = "negative-words"
	PanelPostAudience  = "post-audience"
	PanelPerception    = "perception"
)

const (
	sentimentOuterRadius  = 120
	perceptionOuterRadius = 100
)

// Compose builds the display tree for a catalog and view state. It has no side
// effects; callers re-invoke it after every state change.
func Compose(cat model.CatalogReader, state ViewState) Page {
	return Page{
		State:   state,
		Sidebar: composeSidebar(state),
		Overlay: state.SidebarOpen,
		Header: Header{
			MenuLabel:         "Open sidebar",
			SearchPlaceholder: "Search",
			ProfileLabel:      "View profile",
		},
		Sections: []Section{
			{
				Columns: 1,
				Panels:  []Panel{sentimentPanel(cat.TrafficSentiment(), cat.TrafficPalette())},
			},
			{
				Heading: "Words Analysis",
				Columns: 2,
				Panels: []Panel{
					wordsPanel(PanelPositiveWords, "Top 5 Positive Words", cat.PositiveWords(), model.ColorPositive),
					wordsPanel(PanelNegativeWords, "Top 5 Negative Words", cat.NegativeWords(), model.ColorNegative),
				},
			},
			{
				Heading: "Post vs Audience Analysis",
				Columns: 1,
				Panels:  []Panel{postAudiencePanel(cat.PostAudience())},
			},
			{
				Heading: "User's Perception Analysis",
				Columns: 1,
				Panels:  []Panel{perceptionPanel(cat.Perception(), cat.PerceptionPalette())},
			},
		},
	}
}

func composeSidebar(state ViewState) Sidebar {
	return Sidebar{
		Open:  state.SidebarOpen,
		Title: "Navigation",
		Sections: []NavSection{
			{Links: []NavLink{{Label: "Dashboard", Href: "#"}}},
			{Heading: "Social", Links: []NavLink{
				{Label: "Youtube", Href: "#"},
				{Label: "Twitter", Href: "#"},
				{Label: "Reddit", Href: "#"},
			}},
		},
	}
}

func sentimentPanel(data []model.CategoryDatum, palette model.Palette) Panel {
	p := Panel{
		ID:          PanelSentiment,
		Kind:        PieChart,
		PlotHeight:  model.PlotHeightPx,
		OuterRadius: sentimentOuterRadius,
		Labels:      LabelInsideName,
	}
	for i, d := range data {
		p.Marks = append(p.Marks, Mark{
			Index:    i,
			Category: d.Name,
			Value:    d.Value,
			Color:    palette.At(i),
			Tooltip:  BreakdownTooltip(d.Breakdown),
		})
	}
	return p
}

// BreakdownTooltip lists the breakdown rows in stored order. Every row after
// the first is separated from the previous one. A datum without a breakdown
// has an empty tooltip.
func BreakdownTooltip(rows []model.BreakdownRow) Tooltip {
	var t Tooltip
	for i, r := range rows {
		t.Rows = append(t.Rows, TooltipRow{Name: r.Name, Value: r.Value, Separated: i > 0})
	}
	return t
}

func wordsPanel(id, title string, data []model.WordCountDatum, color string) Panel {
	p := Panel{
		ID:         id,
		Title:      title,
		Kind:       HorizontalBarChart,
		PlotHeight: model.PlotHeightPx,
		Grid:       true,
		Series:     []Series{{Key: "count", Name: "count", Color: color}},
	}
	for i, d := range data {
		p.Categories = append(p.Categories, d.Name)
		p.Marks = append(p.Marks, Mark{
			Index:    i,
			Category: d.Name,
			Series:   "count",
			Value:    float64(d.Count),
			Color:    color,
			Tooltip: Tooltip{
				Header: d.Name,
				Rows:   []TooltipRow{{Name: "count", Value: strconv.FormatInt(d.Count, 10)}},
			},
		})
	}
	return p
}

// PlatformSeries are the grouped bar series, in draw order.
var PlatformSeries = []Series{
	{Key: "positive", Name: "Positive", Color: model.ColorPositive},
	{Key: "neutral", Name: "Neutral", Color: model.ColorNeutral},
	{Key: "negative", Name: "Negative", Color: model.ColorNegative},
}

func postAudiencePanel(data []model.PlatformSentimentDatum) Panel {
	p := Panel{
		ID:         PanelPostAudience,
		Kind:       GroupedBarChart,
		PlotHeight: model.PlotHeightPx,
		Grid:       true,
		Series:     append([]Series(nil), PlatformSeries...),
	}
	for _, s := range PlatformSeries {
		p.Legend = append(p.Legend, LegendEntry{Label: s.Name, Color: s.Color})
	}
	for i, d := range data {
		p.Categories = append(p.Categories, d.Name)
		volumes := []int64{d.Positive, d.Neutral, d.Negative}
		for j, s := range PlatformSeries {
			p.Marks = append(p.Marks, Mark{
				Index:    i,
				Category: d.Name,
				Series:   s.Key,
				Value:    float64(volumes[j]),
				Color:    s.Color,
				Tooltip: Tooltip{
					Header: d.Name,
					Rows:   []TooltipRow{{Name: s.Name, Value: strconv.FormatInt(volumes[j], 10)}},
				},
			})
		}
	}
	return p
}

func perceptionPanel(data []model.PerceptionDatum, palette model.Palette) Panel {
	p := Panel{
		ID:          PanelPerception,
		Kind:        PieChart,
		PlotHeight:  model.PlotHeightPx,
		OuterRadius: perceptionOuterRadius,
		Labels:      LabelOutsideValue,
	}
	for i, d := range data {
		color := palette.At(i)
		p.Marks = append(p.Marks, Mark{
			Index:    i,
			Category: d.Name,
			Value:    d.Value,
			Color:    color,
			Tooltip: Tooltip{
				Rows: []TooltipRow{{Name: d.Name, Value: FormatValue(d.Value)}},
			},
		})
		p.Legend = append(p.Legend, LegendEntry{Label: d.Name, Color: color})
	}
	return p
}

// FormatValue renders a chart value with the fewest digits needed.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
