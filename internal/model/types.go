package model

// BreakdownRow is one line of a sentiment slice's tooltip table.
type BreakdownRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CategoryDatum is one slice of the sentiment pie. Breakdown is optional and
// its order is the display order.
type CategoryDatum struct {
	Name      string         `json:"name"`
	Value     float64        `json:"value"`
	Breakdown []BreakdownRow `json:"breakdown,omitempty"`
}

// WordCountDatum represents a word and its frequency count.
type WordCountDatum struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// PlatformSentimentDatum holds post volumes per sentiment for one platform.
type PlatformSentimentDatum struct {
	Name     string `json:"name"`
	Positive int64  `json:"positive"`
	Neutral  int64  `json:"neutral"`
	Negative int64  `json:"negative"`
}

// PerceptionDatum is one slice of the perception pie.
type PerceptionDatum struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
