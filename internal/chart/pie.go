// Package chart holds the geometry shared by the terminal and browser
// renderers: pie slice angles, label placement, sector paths and axis ticks.
//
// Angles are in degrees, measured counter-clockwise from the 3 o'clock
// position. Points are in screen coordinates (y grows downward), so a
// positive angle maps to (cx + r·cos(-θ), cy + r·sin(-θ)).
package chart

import (
	"fmt"
	"math"
)

const radian = math.Pi / 180

// labelRadiusRatio places inside labels halfway between inner and outer radius.
const labelRadiusRatio = 0.5

// DefaultLabelOffset is the distance of outside value labels from the rim.
const DefaultLabelOffset = 20

// Point is a position in screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Slice is one pie sector.
type Slice struct {
	Index      int
	Value      float64
	Percent    float64 // share of the total, 0..1
	StartAngle float64
	EndAngle   float64
}

// MidAngle returns the angular midpoint of the slice.
func (s Slice) MidAngle() float64 {
	return (s.StartAngle + s.EndAngle) / 2
}

// Span returns the angular width of the slice.
func (s Slice) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// Slices lays out values as a full pie starting at 0°. Each slice spans
// 360·v/Σv; with a zero total every slice has zero width.
func Slices(values []float64) []Slice {
	total := 0.0
	for _, v := range values {
		total += v
	}

	out := make([]Slice, 0, len(values))
	angle := 0.0
	for i, v := range values {
		var span, pct float64
		if total > 0 {
			pct = v / total
			span = 360 * pct
		}
		out = append(out, Slice{
			Index:      i,
			Value:      v,
			Percent:    pct,
			StartAngle: angle,
			EndAngle:   angle + span,
		})
		angle += span
	}
	return out
}

// Polar converts a polar coordinate around (cx, cy) to screen coordinates.
func Polar(cx, cy, r, angle float64) Point {
	return Point{
		X: cx + r*math.Cos(-angle*radian),
		Y: cy + r*math.Sin(-angle*radian),
	}
}

// LabelPoint returns where a slice's inside label is drawn: the slice's
// mid-angle at half the distance between inner and outer radius.
func LabelPoint(cx, cy, innerRadius, outerRadius, midAngle float64) Point {
	r := innerRadius + (outerRadius-innerRadius)*labelRadiusRatio
	return Polar(cx, cy, r, midAngle)
}

// OuterLabelPoint returns where an always-visible value label is drawn,
// offset beyond the outer radius.
func OuterLabelPoint(cx, cy, outerRadius, midAngle, offset float64) Point {
	return Polar(cx, cy, outerRadius+offset, midAngle)
}

// TextAnchor returns the SVG text-anchor for an outside label at angle, so
// labels on the left half grow away from the pie.
func TextAnchor(cx float64, p Point) string {
	switch {
	case p.X > cx+0.5:
		return "start"
	case p.X < cx-0.5:
		return "end"
	default:
		return "middle"
	}
}

// AngleAt returns the angle of (x, y) around (cx, cy), normalized to [0, 360).
func AngleAt(cx, cy, x, y float64) float64 {
	a := math.Atan2(-(y-cy), x-cx) / radian
	return normalize(a)
}

// SliceAt returns the index of the slice covering angle.
func SliceAt(slices []Slice, angle float64) (int, bool) {
	a := normalize(angle)
	for _, s := range slices {
		if s.Span() <= 0 {
			continue
		}
		if a >= s.StartAngle && a < s.EndAngle {
			return s.Index, true
		}
	}
	return 0, false
}

// SectorPath returns an SVG path for the sector between start and end.
func SectorPath(cx, cy, r, start, end float64) string {
	span := end - start
	if span <= 0 {
		return ""
	}
	if span >= 359.999 {
		return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f Z",
			cx+r, cy, r, r, cx-r, cy, r, r, cx+r, cy)
	}

	p1 := Polar(cx, cy, r, start)
	p2 := Polar(cx, cy, r, end)
	largeArc := 0
	if span > 180 {
		largeArc = 1
	}
	// Sweep flag 0: counter-clockwise on screen.
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		cx, cy, p1.X, p1.Y, r, r, largeArc, p2.X, p2.Y)
}

func normalize(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
