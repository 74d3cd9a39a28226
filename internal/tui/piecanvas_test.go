package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/chart"
)

func TestPieRaster_SliceAt(t *testing.T) {
	t.Parallel()

	r := newPieRaster(40, 15, 6, chart.Slices([]float64{24, 26, 50}))
	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"right of center", 27, 7, 0, true},
		{"upper left", 16, 4, 1, true},
		{"below center", 20, 11, 2, true},
		{"corner", 0, 0, 0, false},
		{"beyond stretched radius", 34, 7, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := r.sliceAt(tt.x, tt.y)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Fatalf("sliceAt(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPieRaster_SkipsZeroSlices(t *testing.T) {
	t.Parallel()

	r := newPieRaster(40, 15, 6, chart.Slices([]float64{0, 10}))
	for y := 0; y < 15; y++ {
		for x := 0; x < 40; x++ {
			if idx, ok := r.sliceAt(x, y); ok && idx == 0 {
				t.Fatalf("zero-value slice hit at (%d, %d)", x, y)
			}
		}
	}
}

func TestPieRaster_DrawPlacesLabel(t *testing.T) {
	t.Parallel()

	r := newPieRaster(40, 15, 6, chart.Slices([]float64{1}))
	out := r.draw([]string{"#3b82f6"}, -1, []pieLabel{{text: "Solo", anchor: "middle"}}, lipgloss.Color("#ffffff"))

	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 15 {
		t.Fatalf("rendered %d rows, want 15", len(lines))
	}
	if got := ansi.Cut(lines[7], 18, 22); got != "Solo" {
		t.Fatalf("center label = %q, want Solo", got)
	}
}
