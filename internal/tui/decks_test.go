package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

func testContext() ViewContext {
	st := NewStyles(skin.Default())
	return ViewContext{ContentWidth: 116, PlotRows: model.PlotHeightRows, Styles: &st}
}

func testPanel(t *testing.T, id string) dashboard.Panel {
	t.Helper()
	p, ok := dashboard.Compose(model.NewCatalog(), dashboard.ViewState{}).Panel(id)
	if !ok {
		t.Fatalf("panel %q not composed", id)
	}
	return p
}

func TestRenderTooltip(t *testing.T) {
	t.Parallel()

	st := testContext().Styles
	sentiment := testPanel(t, dashboard.PanelSentiment)

	out := ansi.Strip(renderTooltip(st, sentiment.Marks[2].Tooltip))
	for _, want := range []string{"Twitter", "20%", "Reddit", "30%", "Youtube", "40%"} {
		if !strings.Contains(out, want) {
			t.Errorf("positive tooltip missing %q:\n%s", want, out)
		}
	}
	// top border, three rows, two separators, bottom border
	if got := lipgloss.Height(out); got != 7 {
		t.Errorf("positive tooltip height = %d, want 7:\n%s", got, out)
	}

	words := testPanel(t, dashboard.PanelNegativeWords)
	if got := ansi.Strip(renderTooltip(st, words.Marks[0].Tooltip)); got != "Sad\ncount : 45" {
		t.Errorf("word tooltip = %q", got)
	}

	if got := renderTooltip(st, dashboard.Tooltip{}); got != "" {
		t.Errorf("empty tooltip rendered %q", got)
	}
}

func TestTickAxis(t *testing.T) {
	t.Parallel()

	got := tickAxis([]float64{0, 30, 60, 90, 120}, 120, 41)
	if len([]rune(got)) != 41 {
		t.Fatalf("axis width = %d, want 41", len([]rune(got)))
	}
	if !strings.HasPrefix(got, "0") || !strings.HasSuffix(got, "120") {
		t.Fatalf("axis = %q, want 0 at the start and 120 at the end", got)
	}

	crowded := tickAxis([]float64{0, 1000, 2000, 3000}, 3000, 8)
	if strings.Contains(crowded, "10002000") {
		t.Fatalf("overlapping tick labels: %q", crowded)
	}
}

func TestWordsDeck_MarkAt(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	d := NewWordsDeck(testPanel(t, dashboard.PanelPositiveWords))
	band := d.bandRows(ctx.PlotRows)

	tests := []struct {
		name   string
		y      int
		want   int
		wantOK bool
	}{
		{"first band", 0, 0, true},
		{"last band", 4*band + band - 1, 4, true},
		{"below the bars", 5 * band, 0, false},
		{"axis row", ctx.PlotRows - 1, 0, false},
		{"above the plot", -1, 0, false},
	}
	for _, tt := range tests {
		got, ok := d.MarkAt(ctx, 50, 10, tt.y)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("%s: MarkAt(y=%d) = %d, %v; want %d, %v", tt.name, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPlatformDeck_MarkAt(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	d := NewPlatformDeck(testPanel(t, dashboard.PanelPostAudience))
	const plotWidth = 112
	g := d.geometry(plotWidth)
	stride := g.barWidth + 1

	tests := []struct {
		name   string
		x      int
		want   int
		wantOK bool
	}{
		{"axis", g.axisWidth - 1, 0, false},
		{"first bar", g.axisWidth, 0, true},
		{"gap after first bar", g.axisWidth + g.barWidth, 0, false},
		{"third bar", g.axisWidth + 2*stride, 2, true},
		{"spacer between groups", g.axisWidth + 3*stride, 0, false},
		{"second group first bar", g.axisWidth + 4*stride, 3, true},
	}
	for _, tt := range tests {
		got, ok := d.MarkAt(ctx, plotWidth, tt.x, 3)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("%s: MarkAt(x=%d) = %d, %v; want %d, %v", tt.name, tt.x, got, ok, tt.want, tt.wantOK)
		}
	}

	if _, ok := d.MarkAt(ctx, plotWidth, g.axisWidth, ctx.PlotRows-1); ok {
		t.Error("category label row resolved to a bar")
	}
}

func TestDeck_RenderFitsBox(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	for _, p := range dashboard.Compose(model.NewCatalog(), dashboard.ViewState{}).Panels() {
		d := newDeck(p)
		inner := plotTop(d) - 1 + d.ContentLines(ctx)
		for _, hover := range []int{-1, 0} {
			out := d.Render(ctx, 56, inner, false, hover)
			if got := lipgloss.Height(out); got != inner+2 {
				t.Errorf("%s hover=%d: height = %d, want %d", p.ID, hover, got, inner+2)
			}
			if got := lipgloss.Width(out); got > 58 {
				t.Errorf("%s hover=%d: width = %d, want <= 58", p.ID, hover, got)
			}
		}
	}
}
