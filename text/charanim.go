package text

import (
	"math"

	"videocore/easing"
)

// Unit selects which granularity a stagger preset animates over.
type Unit string

const (
	UnitCharacter Unit = "character"
	UnitWord      Unit = "word"
	UnitLine      Unit = "line"
)

// Preset is the closed set of per-character/word/line animation presets.
type Preset string

const (
	PresetNone       Preset = "none"
	PresetTypewriter Preset = "typewriter"
	PresetFade       Preset = "fade"
	PresetSlideLeft  Preset = "slide-left"
	PresetSlideRight Preset = "slide-right"
	PresetSlideUp    Preset = "slide-up"
	PresetSlideDown  Preset = "slide-down"
	PresetScale      Preset = "scale"
	PresetBlur       Preset = "blur"
	PresetBounce     Preset = "bounce"
	PresetRotate     Preset = "rotate"
	PresetWave       Preset = "wave"
	PresetShake      Preset = "shake"
	PresetPop        Preset = "pop"
	PresetGlitch     Preset = "glitch"
	PresetSplit      Preset = "split"
	PresetFlip       Preset = "flip"
	PresetWordByWord Preset = "word-by-word"
	PresetRainbow    Preset = "rainbow"
)

// AnimationSpec configures the character animator for a TextClip.
type AnimationSpec struct {
	Preset      Preset
	Params      map[string]float64
	Stagger     float64
	Unit        Unit
	InDuration  float64
	OutDuration float64
}

// CharState is the per-unit animation output consumed by the render engine.
type CharState struct {
	Opacity        float64
	ScaleX, ScaleY float64
	Rotation       float64 // degrees
	OffsetX, OffsetY float64
	Blur           float64
	Color          string // empty = unset, inherit base style
	SkewX, SkewY   float64
}

func identityState() CharState {
	return CharState{Opacity: 1, ScaleX: 1, ScaleY: 1}
}

// phase determines (progress, isIn) for a unit-local animation at absolute
// clip-relative time `relative`, given the clip's total duration and the
// animation's in/out durations. Middle phase holds the final (post-in)
// state.
func phase(relative, duration, inDuration, outDuration float64) (progress float64, isIn bool) {
	outStart := duration - outDuration
	switch {
	case relative < inDuration:
		if inDuration <= 0 {
			return 1, true
		}
		return relative / inDuration, true
	case relative >= outStart && outDuration > 0:
		return (relative - outStart) / outDuration, false
	default:
		return 1, true
	}
}

// unitDuration is max(0.1, duration - (totalUnits-1)*stagger) per unit.
func unitDuration(duration float64, totalUnits int, stagger float64) float64 {
	d := duration - float64(totalUnits-1)*stagger
	if d < 0.1 {
		d = 0.1
	}
	return d
}

// EvaluateUnit computes the CharState for one unit (character/word/line) at
// index out of total, given the clip-relative time and the animation spec.
// absoluteTime is the host's unmodified time `t`, used by presets that loop
// continuously (wave/shake/rainbow) rather than following the unit's own
// entry/exit timeline.
func EvaluateUnit(spec AnimationSpec, index, total int, relative, clipDuration, absoluteTime float64) CharState {
	if spec.Preset == "" || spec.Preset == PresetNone {
		return identityState()
	}

	uDur := unitDuration(clipDuration, total, spec.Stagger)
	unitStart := float64(index) * spec.Stagger
	unitRelative := relative - unitStart

	prog, isIn := phase(unitRelative, uDur, spec.InDuration, spec.OutDuration)
	if !isIn {
		prog = 1 - prog // out-phase runs the preset backwards
	}
	prog = clamp01(prog)

	ease := easing.Named("easeOutCubic")

	switch spec.Preset {
	case PresetTypewriter:
		s := identityState()
		if prog >= 0.5 {
			s.Opacity = 1
		} else {
			s.Opacity = 0
		}
		return s
	case PresetFade:
		return CharState{Opacity: ease(prog), ScaleX: 1, ScaleY: 1}
	case PresetSlideLeft, PresetSlideRight, PresetSlideUp, PresetSlideDown:
		dist := paramOr(spec.Params, "distance", 30)
		s := identityState()
		s.Opacity = ease(prog)
		off := dist * (1 - ease(prog))
		switch spec.Preset {
		case PresetSlideLeft:
			s.OffsetX = off
		case PresetSlideRight:
			s.OffsetX = -off
		case PresetSlideUp:
			s.OffsetY = off
		case PresetSlideDown:
			s.OffsetY = -off
		}
		return s
	case PresetScale:
		v := ease(prog)
		return CharState{Opacity: v, ScaleX: v, ScaleY: v}
	case PresetBlur:
		v := ease(prog)
		return CharState{Opacity: v, ScaleX: 1, ScaleY: 1, Blur: (1 - v) * paramOr(spec.Params, "amount", 10)}
	case PresetBounce:
		v := easing.EaseOutBounce(prog)
		return CharState{Opacity: clamp01(prog * 2), ScaleX: v, ScaleY: v}
	case PresetRotate:
		v := ease(prog)
		return CharState{Opacity: v, ScaleX: 1, ScaleY: 1, Rotation: (1 - v) * paramOr(spec.Params, "degrees", 90)}
	case PresetPop:
		v := easing.Named("easeOutBack")(prog)
		return CharState{Opacity: clamp01(prog * 3), ScaleX: v, ScaleY: v}
	case PresetSplit:
		v := ease(prog)
		return CharState{Opacity: v, ScaleX: 1, ScaleY: 1, SkewX: (1 - v) * 20}
	case PresetFlip:
		v := ease(prog)
		return CharState{Opacity: v, ScaleX: 1, ScaleY: v*2 - 1}
	case PresetWordByWord:
		s := identityState()
		s.Opacity = ease(prog)
		return s
	case PresetWave:
		v := math.Sin(absoluteTime*3 + float64(index)*0.5)
		return CharState{Opacity: 1, ScaleX: 1, ScaleY: 1, OffsetY: v * paramOr(spec.Params, "amplitude", 10)}
	case PresetShake:
		v := math.Sin(absoluteTime*20 + float64(index))
		return CharState{Opacity: 1, ScaleX: 1, ScaleY: 1, OffsetX: v * paramOr(spec.Params, "amplitude", 4)}
	case PresetRainbow:
		hue := math.Mod(absoluteTime*60+float64(index)*20, 360)
		return CharState{Opacity: 1, ScaleX: 1, ScaleY: 1, Color: hslString(hue)}
	case PresetGlitch:
		phaseVal := absoluteTime*10 + float64(index)
		r := math.Mod(math.Sin(phaseVal*12.9898)*43758.5453, 1)
		if r < 0 {
			r += 1
		}
		s := identityState()
		s.OffsetX = (r - 0.5) * paramOr(spec.Params, "amount", 8)
		if r > 0.8 {
			s.Color = "#ff00ff"
		}
		return s
	default:
		return identityState()
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

func paramOr(params map[string]float64, key string, def float64) float64 {
	if params == nil {
		return def
	}
	if v, ok := params[key]; ok {
		return v
	}
	return def
}

func hslString(hue float64) string {
	// Cheap HSL(hue,100%,50%) -> "#rrggbb" without importing an image/color
	// package.
	h := hue / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = 1, x, 0
	case h < 2:
		r, g, b = x, 1, 0
	case h < 3:
		r, g, b = 0, 1, x
	case h < 4:
		r, g, b = 0, x, 1
	case h < 5:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	return rgbHex(r, g, b)
}

func rgbHex(r, g, b float64) string {
	const hex = "0123456789abcdef"
	clampByte := func(v float64) byte { return byte(clamp01(v) * 255) }
	toHex := func(v byte) string { return string([]byte{hex[v>>4], hex[v&0xf]}) }
	rb, gb, bb := clampByte(r), clampByte(g), clampByte(b)
	return "#" + toHex(rb) + toHex(gb) + toHex(bb)
}
