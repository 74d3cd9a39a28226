package dashboard

// ChartKind selects how a panel's marks are drawn.
type ChartKind string

const (
	PieChart           ChartKind = "pie"
	HorizontalBarChart ChartKind = "horizontal-bar"
	GroupedBarChart    ChartKind = "grouped-bar"
)

// LabelMode selects the always-visible labels of a pie.
type LabelMode string

const (
	LabelNone         LabelMode = ""
	LabelInsideName   LabelMode = "inside-name"   // slice name at mid radius
	LabelOutsideValue LabelMode = "outside-value" // slice value beyond the rim
)

// Page is the display tree for one render.
type Page struct {
	State    ViewState `json:"state"`
	Sidebar  Sidebar   `json:"sidebar"`
	Overlay  bool      `json:"overlay"`
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

// Sidebar is the off-canvas navigation panel.
type Sidebar struct {
	Open     bool         `json:"open"`
	Title    string       `json:"title"`
	Sections []NavSection `json:"sections"`
}

// NavSection groups placeholder navigation links under an optional heading.
type NavSection struct {
	Heading string    `json:"heading,omitempty"`
	Links   []NavLink `json:"links"`
}

// NavLink is a static navigation entry. Href is a placeholder.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Header holds the labels of the header bar controls. Search and profile are
// inert.
type Header struct {
	MenuLabel         string `json:"menu_label"`
	SearchPlaceholder string `json:"search_placeholder"`
	ProfileLabel      string `json:"profile_label"`
}

// Section is one row of the vertical content flow.
type Section struct {
	Heading string  `json:"heading,omitempty"`
	Columns int     `json:"columns"`
	Panels  []Panel `json:"panels"`
}

// Panel is one chart container.
type Panel struct {
	ID          string        `json:"id"`
	Title       string        `json:"title,omitempty"`
	Kind        ChartKind     `json:"kind"`
	PlotHeight  int           `json:"plot_height"`
	InnerRadius float64       `json:"inner_radius,omitempty"`
	OuterRadius float64       `json:"outer_radius,omitempty"`
	Labels      LabelMode     `json:"labels,omitempty"`
	Grid        bool          `json:"grid"`
	Categories  []string      `json:"categories,omitempty"`
	Series      []Series      `json:"series,omitempty"`
	Marks       []Mark        `json:"marks"`
	Legend      []LegendEntry `json:"legend,omitempty"`
}

// Series is one value column of a grouped bar chart.
type Series struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Mark is one drawn element: a pie slice or a bar.
type Mark struct {
	Index    int     `json:"index"`
	Category string  `json:"category"`
	Series   string  `json:"series,omitempty"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
	Tooltip  Tooltip `json:"tooltip"`
}

// LegendEntry maps a color to a label.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Tooltip is the hover content of a mark.
type Tooltip struct {
	Header string       `json:"header,omitempty"`
	Rows   []TooltipRow `json:"rows,omitempty"`
}

// TooltipRow is one name/value line. Separated rows draw a rule above them.
type TooltipRow struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Separated bool   `json:"separated,omitempty"`
}

// Empty reports whether the tooltip renders no content.
func (t Tooltip) Empty() bool {
	return t.Header == "" && len(t.Rows) == 0
}

// Panels returns every panel in flow order.
func (p Page) Panels() []Panel {
	var out []Panel
	for _, s := range p.Sections {
		out = append(out, s.Panels...)
	}
	return out
}

// Panel looks up a panel by ID.
func (p Page) Panel(id string) (Panel, bool) {
	for _, s := range p.Sections {
		for _, pn := range s.Panels {
			if pn.ID == id {
				return pn, true
			}
		}
	}
	return Panel{}, false
}

// MaxValue returns the largest mark value.
func (p Panel) MaxValue() float64 {
	maxValue := 0.0
	for _, m := range p.Marks {
		if m.Value > maxValue {
			maxValue = m.Value
		}
	}
	return maxValue
}

// MarksFor returns the marks of one category, in series order.
func (p Panel) MarksFor(category string) []Mark {
	var out []Mark
	for _, m := range p.Marks {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Values returns the mark values in order.
func (p Panel) Values() []float64 {
	out := make([]float64, len(p.Marks))
	for i, m := range p.Marks {
		out[i] = m.Value
	}
	return out
}
