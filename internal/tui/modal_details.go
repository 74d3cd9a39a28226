package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
)

// DetailsModal lists the data behind a chart panel.
type DetailsModal struct {
	ctx      ModalContext
	panel    dashboard.Panel
	viewport viewport.Model
}

// NewDetailsModal creates a details modal for a panel. The modal context is
// filled in when the dashboard pushes it.
func NewDetailsModal(p dashboard.Panel) *DetailsModal {
	return &DetailsModal{
		panel:    p,
		viewport: viewport.New(80, 20),
	}
}

func (d *DetailsModal) ID() string { return "details:" + d.panel.ID }

func (d *DetailsModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if scrollViewport(&d.viewport, msg, d.ctx.ReverseScrollWheel) {
		return false, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "escape", "esc", "enter", "q":
			return true, nil
		}
	}
	return false, nil
}

func (d *DetailsModal) title() string {
	if d.panel.Title != "" {
		return d.panel.Title
	}
	return strings.ToUpper(d.panel.ID[:1]) + d.panel.ID[1:]
}

func (d *DetailsModal) content() string {
	st := d.ctx.Styles
	headers := []string{"#", "Name", "Value"}
	if d.panel.Kind == dashboard.GroupedBarChart {
		headers = []string{"#", "Platform", "Series", "Value"}
	}

	rows := make([][]string, 0, len(d.panel.Marks))
	for _, m := range d.panel.Marks {
		row := []string{fmt.Sprintf("%d", m.Index+1), swatch(m.Color) + " " + m.Category}
		if d.panel.Kind == dashboard.GroupedBarChart {
			row = append(row, m.Series)
		}
		rows = append(rows, append(row, dashboard.FormatValue(m.Value)))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.TooltipBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Foreground(st.Text).Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(st.Accent)
			}
			if col == len(headers)-1 {
				s = s.Align(lipgloss.Right)
			}
			return s
		}).
		Rows(rows...)

	var b strings.Builder
	b.WriteString(t.Render())
	for _, m := range d.panel.Marks {
		if tip := renderTooltip(st, m.Tooltip); tip != "" && m.Tooltip.Header == "" && len(m.Tooltip.Rows) > 1 {
			b.WriteString("\n\n" + st.TooltipHeader.Render(m.Category) + "\n" + tip)
		}
	}
	return b.String()
}

func (d *DetailsModal) View(width, height int) string {
	return renderModalFrame(d.ctx.Styles, &d.viewport, d.title(), d.content(), modalStatus(), width, height)
}
