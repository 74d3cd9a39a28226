package model

// CatalogReader provides read-only access to the dashboard datasets.
type CatalogReader interface {
	TrafficSentiment() []CategoryDatum
	PositiveWords() []WordCountDatum
	NegativeWords() []WordCountDatum
	PostAudience() []PlatformSentimentDatum
	Perception() []PerceptionDatum
	TrafficPalette() Palette
	PerceptionPalette() Palette
}
