// Package easing implements the named easing library, the cubic-Bézier and
// damped-spring higher-order constructors, and the interpolate helper that
// every keyframe evaluation in the core funnels through.
package easing

import "math"

// Func maps progress in [0,1] to eased progress, nominally in [0,1].
type Func func(t float64) float64

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate clamps progress to [0,1], eases it, and lerps between a and b.
func Interpolate(a, b, progress float64, ease Func) float64 {
	p := clamp01(progress)
	if ease == nil {
		ease = Linear
	}
	return a + (b-a)*ease(p)
}

// Named closed set of easings: poly in/out/inOut quad through quint plus
// sine/expo/circ/back/elastic/bounce.
var Linear Func = func(t float64) float64 { return t }

func polyIn(n float64) Func  { return func(t float64) float64 { return math.Pow(t, n) } }
func polyOut(n float64) Func { return func(t float64) float64 { return 1 - math.Pow(1-t, n) } }
func polyInOut(n float64) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, n) / 2
		}
		return 1 - math.Pow(-2*t+2, n)/2
	}
}

func sineIn(t float64) float64    { return 1 - math.Cos(t*math.Pi/2) }
func sineOut(t float64) float64   { return math.Sin(t * math.Pi / 2) }
func sineInOut(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

func expoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}
func expoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func expoInOut(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

func circIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func circOut(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
func circInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	return (math.Sqrt(1-(-2*t+2)*(-2*t+2)) + 1) / 2
}

const backC1 = 1.70158
const backC2 = backC1 * 1.525
const backC3 = backC1 + 1

func backIn(t float64) float64 { return backC3*t*t*t - backC1*t*t }
func backOut(t float64) float64 {
	t2 := t - 1
	return 1 + backC3*t2*t2*t2 + backC1*t2*t2
}
func backInOut(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
	}
	t2 := 2*t - 2
	return (math.Pow(t2, 2)*((backC2+1)*t2+backC2) + 2) / 2
}

const elasticP = 2 * math.Pi / 3
const elasticP2 = 2 * math.Pi / 4.5

func elasticIn(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticP)
}
func elasticOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticP) + 1
}
func elasticInOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticP2)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticP2))/2 + 1
}

func bounceOut(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	if t < 1/d1 {
		return n1 * t * t
	} else if t < 2/d1 {
		t -= 1.5 / d1
		return n1*t*t + 0.75
	} else if t < 2.5/d1 {
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	}
	t -= 2.625 / d1
	return n1*t*t + 0.984375
}
func bounceIn(t float64) float64    { return 1 - bounceOut(1-t) }
func bounceInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - bounceOut(1-2*t)) / 2
	}
	return (1 + bounceOut(2*t-1)) / 2
}

var named = map[string]Func{
	"linear":         Linear,
	"easeInQuad":     polyIn(2), "easeOutQuad": polyOut(2), "easeInOutQuad": polyInOut(2),
	"easeInCubic":    polyIn(3), "easeOutCubic": polyOut(3), "easeInOutCubic": polyInOut(3),
	"easeInQuart":    polyIn(4), "easeOutQuart": polyOut(4), "easeInOutQuart": polyInOut(4),
	"easeInQuint":    polyIn(5), "easeOutQuint": polyOut(5), "easeInOutQuint": polyInOut(5),
	"easeInSine":     sineIn, "easeOutSine": sineOut, "easeInOutSine": sineInOut,
	"easeInExpo":     expoIn, "easeOutExpo": expoOut, "easeInOutExpo": expoInOut,
	"easeInCirc":     circIn, "easeOutCirc": circOut, "easeInOutCirc": circInOut,
	"easeInBack":     backIn, "easeOutBack": backOut, "easeInOutBack": backInOut,
	"easeInElastic":  elasticIn, "easeOutElastic": elasticOut, "easeInOutElastic": elasticInOut,
	"easeInBounce":   bounceIn, "easeOutBounce": bounceOut, "easeInOutBounce": bounceInOut,
}

// Named looks up an easing by name. Unknown names fall back to linear — per
// the core's propagation policy, pure evaluation paths never fail.
func Named(name string) Func {
	if f, ok := named[name]; ok {
		return f
	}
	return Linear
}

// EaseOutBounce is exported directly: the text and subtitle engines select
// it explicitly for the "bounce" preset rather than by name lookup.
var EaseOutBounce Func = bounceOut
