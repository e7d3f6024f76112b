package easing

import (
	"errors"
	"math"
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monotonic = []string{
	"linear",
	"easeInQuad", "easeInCubic", "easeInQuart", "easeInQuint",
	"easeInSine", "easeInExpo", "easeInCirc",
	"easeOutQuad", "easeOutCubic", "easeOutQuart", "easeOutQuint",
	"easeOutSine", "easeOutExpo", "easeOutCirc",
	"easeInOutQuad", "easeInOutCubic", "easeInOutQuart", "easeInOutQuint",
	"easeInOutSine", "easeInOutExpo",
}

func TestEndpoints(t *testing.T) {
	for _, name := range append(monotonic, "bounce", "elastic") {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.InDelta(t, 0, f(0), 1e-9, "%s(0)", name)
		assert.InDelta(t, 1, f(1), 1e-9, "%s(1)", name)
	}
}

func TestMonotonic(t *testing.T) {
	const steps = 1000
	for _, name := range monotonic {
		f, err := Lookup(name)
		require.NoError(t, err)
		prev := f(0)
		for i := 1; i <= steps; i++ {
			v := f(float64(i) / steps)
			if v < prev {
				t.Fatalf("%s decreases at t=%g: %g < %g", name, float64(i)/steps, v, prev)
			}
			prev = v
		}
	}
}

func TestTotal(t *testing.T) {
	inputs := []float64{-10, -1, -0.5, 1.5, 2, 10, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, name := range Names() {
		f, _ := Lookup(name)
		for _, x := range inputs {
			assert.NotPanics(t, func() { f(x) }, "%s(%g)", name, x)
		}
	}
	for _, x := range []float64{-1, -0.5, 1.5, 2} {
		assert.False(t, math.IsNaN(EaseInCirc(x)), "EaseInCirc(%g)", x)
		assert.False(t, math.IsNaN(EaseOutCirc(x)), "EaseOutCirc(%g)", x)
	}
}

func TestInOutMidpoint(t *testing.T) {
	for _, f := range []Func{EaseInOutQuad, EaseInOutCubic, EaseInOutQuart, EaseInOutQuint, EaseInOutExpo} {
		below := f(0.5 - 1e-9)
		at := f(0.5)
		assert.InDelta(t, 0.5, at, 1e-9)
		assert.InDelta(t, below, at, 1e-6)
	}
}

func TestMatchesReferenceCurves(t *testing.T) {
	pairs := []struct {
		name string
		ours Func
		ref  func(float64) float64
	}{
		{"InQuad", EaseInQuad, ease.InQuad},
		{"OutQuad", EaseOutQuad, ease.OutQuad},
		{"InOutQuad", EaseInOutQuad, ease.InOutQuad},
		{"InCubic", EaseInCubic, ease.InCubic},
		{"OutCubic", EaseOutCubic, ease.OutCubic},
		{"InOutCubic", EaseInOutCubic, ease.InOutCubic},
		{"InSine", EaseInSine, ease.InSine},
		{"OutSine", EaseOutSine, ease.OutSine},
	}
	for _, p := range pairs {
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			assert.InDelta(t, p.ref(x), p.ours(x), 1e-9, "%s(%g)", p.name, x)
		}
	}
}

func TestBounceSegmentBoundaries(t *testing.T) {
	const eps = 1e-9
	for _, edge := range []float64{1 / bounceD1, 2 / bounceD1, 2.5 / bounceD1} {
		lo := Bounce(edge - eps)
		hi := Bounce(edge + eps)
		assert.GreaterOrEqual(t, lo, 0.0)
		assert.Less(t, lo, 1.0)
		assert.GreaterOrEqual(t, hi, 0.0)
		assert.Less(t, hi, 1.0)
		// adjacent hops meet at the top of the bounce
		assert.InDelta(t, lo, hi, 1e-6, "discontinuity at %g", edge)
	}
	assert.InDelta(t, 1, Bounce(1/bounceD1-eps), 1e-6)
}

func TestBounceValues(t *testing.T) {
	cases := []struct{ x, want float64 }{
		{0, 0},
		{0.2, 0.3025},
		{0.5, 0.765625},
		{0.8, 0.94},
		{0.9, 0.988125},
		{1, 1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Bounce(c.x), 1e-12, "Bounce(%g)", c.x)
	}
}

func TestInBounceMirrorsBounce(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		assert.InDelta(t, 1-Bounce(1-x), EaseInBounce(x), 1e-12, "x=%g", x)
		assert.InDelta(t, 1-EaseInOutBounce(1-x), EaseInOutBounce(x), 1e-12, "x=%g", x)
	}
	assert.InDelta(t, 0.5, EaseInOutBounce(0.5), 1e-12)
	assert.InDelta(t, (1-Bounce(0.5))/2, EaseInOutBounce(0.25), 1e-12)

	f, err := Lookup("easeInBounce")
	require.NoError(t, err)
	assert.Equal(t, EaseInBounce(0.3), f(0.3))
}

func TestElasticDipsBelowZero(t *testing.T) {
	lo, hi := 0.0, 0.0
	for i := 1; i < 1000; i++ {
		v := Elastic(float64(i) / 1000)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	assert.Less(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 1.0)
}

func TestLookup(t *testing.T) {
	f, err := Lookup("easeOutCubic")
	require.NoError(t, err)
	assert.Equal(t, EaseOutCubic(0.3), f(0.3))

	_, err = Lookup("easeSideways")
	assert.True(t, errors.Is(err, ErrUnknownEasing))

	names := Names()
	assert.Contains(t, names, "bounce")
	assert.Contains(t, names, "easeOutInBack")
	assert.IsIncreasing(t, names)
}

func TestRegisteredExtrasKeepEndpoints(t *testing.T) {
	for _, name := range Names() {
		f, _ := Lookup(name)
		assert.InDelta(t, 0, f(0), 1e-2, "%s(0)", name)
		assert.InDelta(t, 1, f(1), 1e-2, "%s(1)", name)
	}
}
