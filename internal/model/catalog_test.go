package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCatalog_Validates(t *testing.T) {
	t.Parallel()

	if err := Validate(NewCatalog()); err != nil {
		t.Fatalf("Validate(NewCatalog()) = %v, want nil", err)
	}
}

func TestNewCatalog_DatasetSizes(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"traffic sentiment", len(c.TrafficSentiment()), 3},
		{"positive words", len(c.PositiveWords()), 5},
		{"negative words", len(c.NegativeWords()), 5},
		{"post audience", len(c.PostAudience()), 3},
		{"perception", len(c.Perception()), 5},
		{"traffic palette", len(c.TrafficPalette()), 3},
		{"perception palette", len(c.PerceptionPalette()), 5},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: len = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestCatalog_PositiveBreakdownOrder(t *testing.T) {
	t.Parallel()

	var positive *CategoryDatum
	for _, d := range NewCatalog().TrafficSentiment() {
		if d.Name == "Positive" {
			positive = &d
			break
		}
	}
	if positive == nil {
		t.Fatal("Positive entry not found")
	}

	want := []BreakdownRow{
		{Name: "Twitter", Value: "20%"},
		{Name: "Reddit", Value: "30%"},
		{Name: "Youtube", Value: "40%"},
	}
	if diff := cmp.Diff(want, positive.Breakdown); diff != "" {
		t.Fatalf("Positive breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_PreservesSentimentValuesVerbatim(t *testing.T) {
	t.Parallel()

	var got []float64
	for _, d := range NewCatalog().TrafficSentiment() {
		got = append(got, d.Value)
	}
	if diff := cmp.Diff([]float64{24, 26, 50}, got); diff != "" {
		t.Fatalf("sentiment values mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	words := c.PositiveWords()
	words[0].Count = -1
	if c.PositiveWords()[0].Count != 120 {
		t.Fatal("mutating PositiveWords result changed the catalog")
	}

	sentiment := c.TrafficSentiment()
	sentiment[0].Breakdown[0].Value = "99%"
	if got := c.TrafficSentiment()[0].Breakdown[0].Value; got != "10%" {
		t.Fatalf("breakdown value = %q after mutating a copy, want 10%%", got)
	}

	palette := c.PerceptionPalette()
	palette[0] = "#000000"
	if got := c.PerceptionPalette()[0]; got != "#ef4444" {
		t.Fatalf("palette[0] = %q after mutating a copy, want #ef4444", got)
	}
}

func TestPalette_AtWrapsAround(t *testing.T) {
	t.Parallel()

	p := Palette{"#a", "#b", "#c"}
	for i := 0; i < 10; i++ {
		if got, want := p.At(i), p[i%len(p)]; got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

type brokenCatalog struct {
	*Catalog
}

func (brokenCatalog) NegativeWords() []WordCountDatum {
	return []WordCountDatum{{Name: "Sad", Count: -3}}
}

func (brokenCatalog) PerceptionPalette() Palette { return nil }

func TestValidate_ReportsMalformedData(t *testing.T) {
	t.Parallel()

	err := Validate(brokenCatalog{NewCatalog()})
	if err == nil {
		t.Fatal("Validate = nil, want error for negative count and empty palette")
	}
	if !errors.Is(err, ErrMalformedCatalog) {
		t.Fatalf("Validate error = %v, want ErrMalformedCatalog", err)
	}
}
