package easing

import "math"

// Table samples f at n evenly spaced points across [0,1], endpoints
// included. n below 2 is raised to 2.
func Table(f Func, n int) []float64 {
	if n < 2 {
		n = 2
	}
	increment := 1.0 / float64(n-1)
	lut := make([]float64, n)
	for i := 0; i < n; i++ {
		lut[i] = f(float64(i) * increment)
	}
	return lut
}

// FromTable returns an easing function which interpolates linearly
// between the entries of lut, which are taken to be evenly spaced over
// [0,1]. Input outside [0,1] is clamped. The table is not copied.
func FromTable(lut []float64) Func {
	switch len(lut) {
	case 0:
		return Linear
	case 1:
		v := lut[0]
		return func(float64) float64 { return v }
	}
	last := len(lut) - 1
	return func(t float64) float64 {
		if !(t > 0) { // NaN lands here too
			return lut[0]
		}
		if t >= 1 {
			return lut[last]
		}
		pos := t * float64(last)
		i := int(math.Floor(pos))
		frac := pos - float64(i)
		return lut[i] + (lut[i+1]-lut[i])*frac
	}
}
