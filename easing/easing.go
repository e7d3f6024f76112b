/*
Package easing provides shaping functions which map a linear time fraction
in [0,1] to shaped progress.

Every function in this package is total: it accepts any float64 and never
panics. Endpoint values are f(0) = 0 and f(1) = 1; Bounce and Elastic keep
those endpoints but may leave [0,1] in between.
*/
package easing

import "math"

// Func maps a normalized time fraction to shaped progress.
type Func func(t float64) float64

// Bounce constants.
const (
	bounceN1 = 7.5625
	bounceD1 = 2.75
)

// Elastic period factor, 2π/3.
const elasticC4 = (2 * math.Pi) / 3

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

func EaseInQuad(t float64) float64 {
	return t * t
}

func EaseInCubic(t float64) float64 {
	return t * t * t
}

func EaseInQuart(t float64) float64 {
	return t * t * t * t
}

func EaseInQuint(t float64) float64 {
	return t * t * t * t * t
}

// EaseInSine starts slowly along a quarter cosine.
func EaseInSine(t float64) float64 {
	return 1 - math.Cos((t*math.Pi)/2)
}

// EaseInExpo is 0 at t == 0, 2^(10t-10) elsewhere.
func EaseInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// EaseInCirc follows a quarter circle. The radicand is clamped at zero so
// that out-of-range input does not produce NaN.
func EaseInCirc(t float64) float64 {
	return 1 - math.Sqrt(math.Max(0, 1-math.Pow(t, 2)))
}

func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

func EaseOutSine(t float64) float64 {
	return math.Sin((t * math.Pi) / 2)
}

// EaseOutExpo is 1 at t == 1, 1-2^(-10t) elsewhere.
func EaseOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func EaseOutCirc(t float64) float64 {
	return math.Sqrt(math.Max(0, 1-math.Pow(t-1, 2)))
}

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseInOutExpo returns the endpoints unchanged; the exponential halves
// would otherwise miss them by 2^-10.
func EaseInOutExpo(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// Bounce decays over four parabolic hops.
func Bounce(t float64) float64 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	default:
		t -= 2.625 / bounceD1
		return bounceN1*t*t + 0.984375
	}
}

// EaseInBounce mirrors Bounce, hopping away from 0 before rising to 1.
func EaseInBounce(t float64) float64 {
	return 1 - Bounce(1-t)
}

// EaseInOutBounce runs EaseInBounce over the first half and Bounce over
// the second.
func EaseInOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - Bounce(1-2*t)) / 2
	}
	return (1 + Bounce(2*t-1)) / 2
}

// Elastic overshoots with a decaying sine before settling at 1.
func Elastic(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
}
