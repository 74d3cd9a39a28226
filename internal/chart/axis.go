package chart

import "math"

var niceSteps = []float64{1, 2, 2.5, 3, 5, 10}

// NiceTicks returns evenly spaced axis ticks from 0 covering domainMax, using
// roughly count ticks with a step of 1, 2, 2.5, 3 or 5 times a power of ten.
func NiceTicks(domainMax float64, count int) []float64 {
	if count < 2 {
		count = 2
	}
	if domainMax <= 0 {
		return []float64{0, 1}
	}

	raw := domainMax / float64(count-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range niceSteps {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}

	n := int(math.Ceil(domainMax/step - 1e-9))
	if n < 1 {
		n = 1
	}
	ticks := make([]float64, n+1)
	for i := range ticks {
		ticks[i] = step * float64(i)
	}
	return ticks
}

// Scale maps v from [0, domainMax] onto [0, length].
func Scale(v, domainMax, length float64) float64 {
	if domainMax <= 0 {
		return 0
	}
	return v / domainMax * length
}
