package easing

import "github.com/charmbracelet/harmonica"

// Number of samples in a baked spring curve.
const springSamples = 241

// Spring bakes a damped harmonic spring travelling from 0 to 1 into an
// easing function. frequency is the angular frequency per unit of
// animation time and damping the damping ratio: below 1 the curve
// overshoots, 1 and above it approaches 1 without crossing it. A spring
// that has not settled by t = 1 is snapped to 1 at the end.
func Spring(frequency, damping float64) Func {
	spring := harmonica.NewSpring(1.0/float64(springSamples-1), frequency, damping)
	lut := make([]float64, springSamples)
	pos, vel := 0.0, 0.0
	for i := 1; i < springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		lut[i] = pos
	}
	lut[springSamples-1] = 1
	return FromTable(lut)
}
