package model

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog is the fixed set of chart datasets. It is built once at startup and
// handed to whichever surface renders it; accessors return copies so the
// shared value cannot be mutated.
type Catalog struct {
	trafficSentiment  []CategoryDatum
	positiveWords     []WordCountDatum
	negativeWords     []WordCountDatum
	postAudience      []PlatformSentimentDatum
	perception        []PerceptionDatum
	trafficPalette    Palette
	perceptionPalette Palette
}

var _ CatalogReader = (*Catalog)(nil)

// NewCatalog returns the built-in dashboard datasets.
func NewCatalog() *Catalog {
	return &Catalog{
		trafficSentiment: []CategoryDatum{
			{Name: "Neutral", Value: 24, Breakdown: []BreakdownRow{
				{Name: "Source A", Value: "10%"},
				{Name: "Source B", Value: "14%"},
			}},
			{Name: "Negative", Value: 26, Breakdown: []BreakdownRow{
				{Name: "Source X", Value: "16%"},
				{Name: "Source Y", Value: "10%"},
			}},
			{Name: "Positive", Value: 50, Breakdown: []BreakdownRow{
				{Name: "Twitter", Value: "20%"},
				{Name: "Reddit", Value: "30%"},
				{Name: "Youtube", Value: "40%"},
			}},
		},
		// Blue (Neutral), Red (Negative), Green (Positive)
		trafficPalette: Palette{"#3b82f6", "#ef4444", "#10b981"},
		positiveWords: []WordCountDatum{
			{Name: "Happy", Count: 120},
			{Name: "Success", Count: 98},
			{Name: "Great", Count: 86},
			{Name: "Joy", Count: 74},
			{Name: "Love", Count: 65},
		},
		negativeWords: []WordCountDatum{
			{Name: "Sad", Count: 45},
			{Name: "Fail", Count: 32},
			{Name: "Poor", Count: 28},
			{Name: "Hate", Count: 21},
			{Name: "Lost", Count: 15},
		},
		postAudience: []PlatformSentimentDatum{
			{Name: "Youtube", Positive: 1200, Neutral: 700, Negative: 150},
			{Name: "Twitter", Positive: 2500, Neutral: 1200, Negative: 300},
			{Name: "Reddit", Positive: 800, Neutral: 1500, Negative: 900},
		},
		perception: []PerceptionDatum{
			{Name: "Issues not resolve", Value: 30},
			{Name: "Confused", Value: 25},
			{Name: "Backout", Value: 20},
			{Name: "No Opinion", Value: 15},
			{Name: "Angry", Value: 10},
		},
		perceptionPalette: Palette{"#ef4444", "#f97316", "#3b82f6", "#a855f7", "#64748b"},
	}
}

func (c *Catalog) TrafficSentiment() []CategoryDatum {
	out := make([]CategoryDatum, len(c.trafficSentiment))
	for i, d := range c.trafficSentiment {
		d.Breakdown = slices.Clone(d.Breakdown)
		out[i] = d
	}
	return out
}

func (c *Catalog) PositiveWords() []WordCountDatum        { return slices.Clone(c.positiveWords) }
func (c *Catalog) NegativeWords() []WordCountDatum        { return slices.Clone(c.negativeWords) }
func (c *Catalog) PostAudience() []PlatformSentimentDatum { return slices.Clone(c.postAudience) }
func (c *Catalog) Perception() []PerceptionDatum          { return slices.Clone(c.perception) }
func (c *Catalog) TrafficPalette() Palette                { return slices.Clone(c.trafficPalette) }
func (c *Catalog) PerceptionPalette() Palette             { return slices.Clone(c.perceptionPalette) }

// ErrMalformedCatalog is returned by Validate for datasets that would render
// incorrectly.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Validate checks that pie values are positive, counts are non-negative and
// palettes are non-empty. Rendering never calls it.
func Validate(c CatalogReader) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMalformedCatalog, fmt.Sprintf(format, args...)))
	}

	for _, d := range c.TrafficSentiment() {
		if d.Value <= 0 {
			bad("sentiment %q has non-positive value %v", d.Name, d.Value)
		}
	}
	for _, set := range [][]WordCountDatum{c.PositiveWords(), c.NegativeWords()} {
		for _, d := range set {
			if d.Count < 0 {
				bad("word %q has negative count %d", d.Name, d.Count)
			}
		}
	}
	for _, d := range c.PostAudience() {
		if d.Positive < 0 || d.Neutral < 0 || d.Negative < 0 {
			bad("platform %q has a negative volume", d.Name)
		}
	}
	for _, d := range c.Perception() {
		if d.Value < 0 {
			bad("perception %q has negative value %v", d.Name, d.Value)
		}
	}
	if len(c.TrafficPalette()) == 0 {
		bad("traffic palette is empty")
	}
	if len(c.PerceptionPalette()) == 0 {
		bad("perception palette is empty")
	}
	return errors.Join(errs...)
}
