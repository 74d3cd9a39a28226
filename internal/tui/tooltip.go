package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

// renderTooltip draws a mark's hover content. Tooltips with separated rows are
// drawn as a bordered table with a rule between rows; plain tooltips use the
// "name : value" form.
func renderTooltip(st *Styles, tip dashboard.Tooltip) string {
	if tip.Empty() {
		return ""
	}

	var parts []string
	if tip.Header != "" {
		parts = append(parts, st.TooltipHeader.Render(tip.Header))
	}

	separated := false
	for _, r := range tip.Rows {
		if r.Separated {
			separated = true
			break
		}
	}

	if separated {
		rows := make([][]string, 0, len(tip.Rows))
		for _, r := range tip.Rows {
			rows = append(rows, []string{r.Name, r.Value})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(st.TooltipBorder).
			BorderRow(true).
			StyleFunc(func(_, col int) lipgloss.Style {
				s := lipgloss.NewStyle().Foreground(st.Text).Padding(0, 1)
				if col == 1 {
					s = s.Bold(true).Align(lipgloss.Right)
				}
				return s
			}).
			Rows(rows...)
		parts = append(parts, t.Render())
	} else {
		for _, r := range tip.Rows {
			parts = append(parts, lipgloss.NewStyle().Foreground(st.Text).Render(r.Name+" : "+r.Value))
		}
	}

	return strings.Join(parts, "\n")
}

// tooltipReserve is the number of lines needed to show the tallest tooltip of
// a panel, so hovering never changes a deck's height.
func tooltipReserve(st *Styles, marks []dashboard.Mark) int {
	h := 0
	for _, m := range marks {
		if out := renderTooltip(st, m.Tooltip); out != "" {
			h = max(h, lipgloss.Height(out))
		}
	}
	return h
}
