package web

import (
	"strings"
	"testing"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

func renderPanel(t *testing.T, id string) string {
	t.Helper()
	p, ok := dashboard.Compose(model.NewCatalog(), dashboard.ViewState{}).Panel(id)
	if !ok {
		t.Fatalf("panel %q not composed", id)
	}
	return svgRenderer{skin: skin.Default()}.render(p)
}

func TestSVG_SentimentPie(t *testing.T) {
	t.Parallel()

	out := renderPanel(t, dashboard.PanelSentiment)
	for _, name := range []string{"Neutral", "Negative", "Positive"} {
		if !strings.Contains(out, ">"+name+"</text>") {
			t.Errorf("pie missing inside label %q", name)
		}
	}
	for _, color := range []string{"#3b82f6", "#ef4444", "#10b981"} {
		if !strings.Contains(out, `fill="`+color+`"`) {
			t.Errorf("pie missing slice color %s", color)
		}
	}
	// The Positive breakdown has three rows with a rule before the last two.
	if got := strings.Count(out, `class="tip-rule"`); got != 2 {
		t.Errorf("tooltip rules = %d, want 2", got)
	}
	if !strings.Contains(out, `Twitter : <tspan class="tip-value">20%</tspan>`) {
		t.Error("Positive tooltip missing Twitter 20%")
	}
}

func TestSVG_PerceptionValueLabels(t *testing.T) {
	t.Parallel()

	out := renderPanel(t, dashboard.PanelPerception)
	for _, v := range []string{"30", "25", "20", "15", "10"} {
		if !strings.Contains(out, ">"+v+"</text>") {
			t.Errorf("perception pie missing value label %s", v)
		}
	}
	if !strings.Contains(out, `text-anchor="start"`) || !strings.Contains(out, `text-anchor="end"`) {
		t.Error("outside labels should anchor away from the pie on both sides")
	}
}

func TestSVG_PlatformGroupedBars(t *testing.T) {
	t.Parallel()

	out := renderPanel(t, dashboard.PanelPostAudience)
	if got := strings.Count(out, `<rect class="shape"`); got != 9 {
		t.Fatalf("bars = %d, want 9", got)
	}
	for _, row := range []string{
		`Positive : <tspan class="tip-value">800</tspan>`,
		`Neutral : <tspan class="tip-value">1500</tspan>`,
		`Negative : <tspan class="tip-value">900</tspan>`,
	} {
		if !strings.Contains(out, row) {
			t.Errorf("Reddit tooltips missing %q", row)
		}
	}
	if !strings.Contains(out, ">3000</text>") {
		t.Error("value axis missing its top tick")
	}
}

func TestSVG_WordBarsHaveGrid(t *testing.T) {
	t.Parallel()

	out := renderPanel(t, dashboard.PanelNegativeWords)
	if !strings.Contains(out, `class="grid"`) {
		t.Error("word chart missing grid lines")
	}
	if !strings.Contains(out, `count : <tspan class="tip-value">45</tspan>`) {
		t.Error("Sad tooltip missing count : 45")
	}
}

func TestSVG_EscapesText(t *testing.T) {
	t.Parallel()

	p := dashboard.Panel{
		ID:         "x",
		Kind:       dashboard.HorizontalBarChart,
		PlotHeight: model.PlotHeightPx,
		Categories: []string{"<b>"},
		Marks:      []dashboard.Mark{{Category: "<b>", Value: 1, Color: "#000000"}},
	}
	out := svgRenderer{skin: skin.Default()}.render(p)
	if strings.Contains(out, "<b>") {
		t.Fatal("category text not escaped")
	}
}

func TestStateHref(t *testing.T) {
	t.Parallel()

	open := dashboard.ViewState{SidebarOpen: true}
	closed := dashboard.ViewState{}
	tests := []struct {
		name   string
		state  dashboard.ViewState
		action dashboard.Action
		want   string
	}{
		{"menu opens", closed, dashboard.ActionMenu, "/?sidebar=open"},
		{"menu closes", open, dashboard.ActionMenu, "/?sidebar=closed"},
		{"close closes", open, dashboard.ActionClose, "/?sidebar=closed"},
		{"overlay closes", open, dashboard.ActionOverlay, "/?sidebar=closed"},
		{"overlay ignored while closed", closed, dashboard.ActionOverlay, "/?sidebar=closed"},
	}
	for _, tt := range tests {
		if got := stateHref(tt.state, tt.action); got != tt.want {
			t.Errorf("%s: stateHref = %q, want %q", tt.name, got, tt.want)
		}
	}
}
