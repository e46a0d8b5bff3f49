package graphics

import (
	"math"

	"videocore/easing"
	"videocore/emphasis"
)

// evaluateEntryExit eases the given progress (already normalized to [0,1]
// over the window's own duration) through the named preset and converts it
// into per-component offsets/scales/opacity/rotation, reusing emphasis.State
// as the common composable shape.
func evaluateEntryExit(preset EntryExit, progress float64) emphasis.State {
	p := clamp01(progress)
	s := emphasis.State{ScaleX: 1, ScaleY: 1, OpacityMul: 1}

	switch preset {
	case EEFade:
		s.OpacityMul = easing.Named("easeOutCubic")(p)
	case EESlideLeft, EESlideRight, EESlideUp, EESlideDown:
		e := easing.Named("easeOutCubic")(p)
		s.OpacityMul = e
		dist := (1 - e) * 60
		switch preset {
		case EESlideLeft:
			s.OffsetX = dist
		case EESlideRight:
			s.OffsetX = -dist
		case EESlideUp:
			s.OffsetY = dist
		case EESlideDown:
			s.OffsetY = -dist
		}
	case EEScale:
		v := easing.Named("easeOutBack")(p)
		s.ScaleX, s.ScaleY = v, v
		s.OpacityMul = clamp01(p * 2)
	case EERotate:
		e := easing.Named("easeOutCubic")(p)
		s.OpacityMul = e
		s.RotationDelta = (1 - e) * 180
	case EEBounce:
		v := easing.EaseOutBounce(p)
		s.ScaleX, s.ScaleY = v, v
		s.OpacityMul = clamp01(p * 2)
	case EEPop:
		v := easing.Named("easeOutBack")(p)
		s.ScaleX, s.ScaleY = v, v
		s.OpacityMul = clamp01(p * 3)
	case EEDraw:
		// Stroke-reveal: caller uses progress directly as a path dash
		// fraction; contributes opacity only here.
		s.OpacityMul = 1
	case EEWipeLeft, EEWipeRight, EEWipeUp, EEWipeDown, EERevealCenter, EERevealEdges:
		// Wipes/reveals are clip-mask effects applied by the caller against
		// progress directly; the transform contribution is opacity-only.
		s.OpacityMul = 1
	case EEElastic:
		v := easing.Named("easeOutElastic")(p)
		s.ScaleX, s.ScaleY = v, v
		s.OpacityMul = clamp01(p * 2)
	case EEFlipH:
		s.ScaleX = math.Cos(p * math.Pi)
		s.ScaleY = 1
		s.OpacityMul = easing.Named("easeOutCubic")(p)
	case EEFlipV:
		s.ScaleX = 1
		s.ScaleY = math.Cos(p * math.Pi)
		s.OpacityMul = easing.Named("easeOutCubic")(p)
	default:
		s.OpacityMul = 1
	}
	return s
}

// WipeMaskFraction returns the [0,1] directional reveal fraction for the
// wipe/reveal family, used by the caller to clip the rasterised shape.
func WipeMaskFraction(preset EntryExit, progress float64) (axis string, fraction float64, fromCenter bool) {
	switch preset {
	case EEWipeLeft:
		return "x", progress, false
	case EEWipeRight:
		return "x", 1 - progress, false
	case EEWipeUp:
		return "y", progress, false
	case EEWipeDown:
		return "y", 1 - progress, false
	case EERevealCenter:
		return "radial", progress, true
	case EERevealEdges:
		return "radial", 1 - progress, true
	default:
		return "", 1, false
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
