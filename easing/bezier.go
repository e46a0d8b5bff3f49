package easing

import (
	"math"
	"sync"
)

// bezierKey identifies a cubic-Bézier easing by its two control points. The
// two endpoints are always (0,0) and (1,1), matching the CSS cubic-bezier()
// convention used throughout the clip/keyframe easing vocabulary.
type bezierKey struct{ x1, y1, x2, y2 float64 }

// solverCache is process-global and immutable after insertion: a Bézier
// curve is looked up by its four control points, never mutated once built,
// so sharing it across goroutines needs no lock beyond the map guard below.
// One keyframe may query its easing thousands of times per rendered frame,
// so re-deriving the polynomial coefficients on every call would dominate
// the render budget.
var (
	solverMu    sync.Mutex
	solverCache = map[bezierKey]Func{}
)

// CubicBezier returns the eased-progress function for control points
// (x1,y1) and (x2,y2), caching the result keyed by the four floats.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	key := bezierKey{x1, y1, x2, y2}

	solverMu.Lock()
	if f, ok := solverCache[key]; ok {
		solverMu.Unlock()
		return f
	}
	solverMu.Unlock()

	f := buildBezier(x1, y1, x2, y2)

	solverMu.Lock()
	solverCache[key] = f
	solverMu.Unlock()

	return f
}

func buildBezier(x1, y1, x2, y2 float64) Func {
	// Horner-form coefficients for B(t) = 3(1-t)^2 t*P1 + 3(1-t) t^2*P2 + t^3,
	// expressed as At^3 + Bt^2 + Ct for each axis.
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleCurveX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleCurveY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	sampleCurveDX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solveCurveX := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		t := x
		for i := 0; i < 8; i++ {
			d := sampleCurveDX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			current := sampleCurveX(t) - x
			t -= current / d
		}

		// Newton-Raphson drifted or the slope guard tripped: fall back to
		// bisection to a fixed precision, bounded at 10 steps (no
		// wall-clock-dependent loop per the core's iteration-budget rule).
		if t < 0 || t > 1 || math.Abs(sampleCurveX(t)-x) > 1e-7 {
			lo, hi := 0.0, 1.0
			t = x
			for i := 0; i < 10; i++ {
				cur := sampleCurveX(t)
				if math.Abs(cur-x) < 1e-7 {
					break
				}
				if cur < x {
					lo = t
				} else {
					hi = t
				}
				t = (lo + hi) / 2
			}
		}
		return t
	}

	return func(x float64) float64 {
		x = clamp01(x)
		if x1 == y1 && x2 == y2 {
			return x // linear special case, still correct via the general path
		}
		t := solveCurveX(x)
		return sampleCurveY(t)
	}
}
