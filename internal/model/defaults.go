package model

// Shared defaults used by both presentation surfaces.
const (
	DefaultSkin       = "default"
	DefaultListenAddr = "127.0.0.1:3000"

	// PlotHeightPx is the fixed plotting-area height of every chart panel in
	// the browser; PlotHeightRows is its terminal counterpart.
	PlotHeightPx   = 300
	PlotHeightRows = 15
)

// Series colors of the per-platform grouped bar chart. The word-frequency
// charts reuse the positive and negative colors.
const (
	ColorPositive = "#10b981"
	ColorNeutral  = "#3b82f6"
	ColorNegative = "#ef4444"
)
