package easing

import (
	"fmt"
	"math"
)

// Newton-Raphson limits for inverting the x polynomial. They bound both
// the accuracy and the worst-case cost of one evaluation.
const (
	bezierIterations = 8
	bezierEpsilon    = 1e-6
)

// Bezier is a cubic Bézier easing curve from (0,0) to (1,1) with control
// points (x1,y1) and (x2,y2), stored in polynomial form.
type Bezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

// NewCubicBezier creates a Bezier, rejecting non-finite coordinates and
// x coordinates outside [0,1]. Outside that range the curve is no longer
// a function of x.
func NewCubicBezier(x1, y1, x2, y2 float64) (*Bezier, error) {
	for _, v := range []float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("cubic bezier (%g,%g,%g,%g): non-finite control point: %w",
				x1, y1, x2, y2, ErrInvalidArgument)
		}
	}
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
		return nil, fmt.Errorf("cubic bezier (%g,%g,%g,%g): x outside [0,1]: %w",
			x1, y1, x2, y2, ErrInvalidArgument)
	}
	return newBezier(x1, y1, x2, y2), nil
}

func newBezier(x1, y1, x2, y2 float64) *Bezier {
	b := new(Bezier)
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

// CubicBezier returns an easing function for the curve with control
// points (x1,y1) and (x2,y2). Inputs are not checked; use NewCubicBezier
// for validation.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	return newBezier(x1, y1, x2, y2).Ease
}

// SampleX evaluates the x polynomial at parameter t.
func (b *Bezier) SampleX(t float64) float64 {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

// SampleY evaluates the y polynomial at parameter t.
func (b *Bezier) SampleY(t float64) float64 {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

func (b *Bezier) sampleDerivativeX(t float64) float64 {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

// SolveX finds the parameter t with SampleX(t) = x by Newton-Raphson,
// starting at t = x. When the iteration budget runs out or the tangent
// is nearly flat, the current estimate is returned as is.
func (b *Bezier) SolveX(x float64) float64 {
	t, _, _ := b.solveX(x)
	return t
}

// solveStop tells why solveX returned.
type solveStop int

// The residual fell below bezierEpsilon, the derivative fell below
// bezierEpsilon, or all bezierIterations steps were taken.
const (
	solveConverged solveStop = iota
	solveFlatTangent
	solveIterationCap
)

// solveX also reports why it stopped and how many Newton steps it took.
func (b *Bezier) solveX(x float64) (float64, solveStop, int) {
	t := x
	for i := 0; i < bezierIterations; i++ {
		residual := b.SampleX(t) - x
		if math.Abs(residual) < bezierEpsilon {
			return t, solveConverged, i
		}
		dx := b.sampleDerivativeX(t)
		if math.Abs(dx) < bezierEpsilon {
			return t, solveFlatTangent, i
		}
		t -= residual / dx
	}
	return t, solveIterationCap, bezierIterations
}

// Ease returns y for the given x.
func (b *Bezier) Ease(x float64) float64 {
	return b.SampleY(b.SolveX(x))
}
