package text

import (
	"videocore/emphasis"
	"videocore/keyframe"
	"videocore/transform"
)

// Style bundles the visual styling of a TextClip not covered by Transform.
type Style struct {
	Color           string
	FontFamily      string
	FontSize        float64
	FontWeight      string
	LetterSpacing   float64
	LineHeight      float64
	BackgroundColor string // empty = none
	StrokeColor     string
	StrokeWidth     float64
	ShadowColor     string
	ShadowBlur      float64
	ShadowOffsetX   float64
	ShadowOffsetY   float64
}

// Clip is the subset of a timeline TextClip the render engine needs. It is
// declared here (rather than imported from the timeline package) so text
// has no dependency on timeline, matching the data-flow direction in §2.
type Clip struct {
	Text            string
	Style           Style
	Transform       transform.Transform
	Keyframes       []keyframe.Keyframe
	Animation       AnimationSpec
	Emphasis        *emphasis.Spec
	StartTime       float64
	Duration        float64
}

// AnimatedCharState pairs a laid-out Character with its evaluated per-unit
// state for one frame.
type AnimatedCharState struct {
	Character
	CharState
}

// AnimatedTextState is calculateAnimatedLayout's output: the base layout
// plus one CharState per character.
type AnimatedTextState struct {
	Layout Layout
	Chars  []AnimatedCharState
}

// CalculateAnimatedLayout evaluates the phase logic and per-unit preset for
// every character in layout at timeline time t (the clip-relative time is
// t minus clip.StartTime).
func CalculateAnimatedLayout(clip Clip, layout Layout, t float64) AnimatedTextState {
	relative := t - clip.StartTime
	out := AnimatedTextState{Layout: layout, Chars: make([]AnimatedCharState, len(layout.Characters))}

	totalUnits, indexOf := unitCount(clip.Animation.Unit, layout)

	for i, ch := range layout.Characters {
		idx := indexOf(ch)
		state := EvaluateUnit(clip.Animation, idx, totalUnits, relative, clip.Duration, t)
		out.Chars[i] = AnimatedCharState{Character: ch, CharState: state}
	}
	return out
}

// unitCount returns the number of stagger units and a function mapping a
// Character to its unit index, depending on the configured Unit.
func unitCount(unit Unit, layout Layout) (int, func(Character) int) {
	switch unit {
	case UnitWord:
		wordOf := make([]int, len(layout.Characters))
		for wi, w := range layout.Words {
			for ci := w.CharStart; ci < w.CharEnd; ci++ {
				wordOf[layout.Characters[ci].GlobalIndex] = wi
			}
		}
		return len(layout.Words), func(c Character) int {
			if c.GlobalIndex < len(wordOf) {
				return wordOf[c.GlobalIndex]
			}
			return 0
		}
	case UnitLine:
		return len(layout.Lines), func(c Character) int { return c.LineIndex }
	default: // UnitCharacter
		return len(layout.Characters), func(c Character) int { return c.GlobalIndex }
	}
}

// DrawOp is one primitive draw instruction in the render engine's display
// list. The host applies these against its own 2D context; the core never
// touches a canvas directly (§5's suspension-point rule: compositing of
// already-decoded/laid-out content is synchronous and deterministic).
type DrawOp struct {
	Kind          string // "save","restore","translate","rotate","scale","alpha","fillRect","fillText","strokeText","shadow"
	X, Y          float64
	Angle         float64 // radians, for "rotate"
	SX, SY        float64 // for "scale"
	Alpha         float64
	Text          string
	Color         string
	Width, Height float64
	Font          string
}

// RenderPlan is the ordered list of draw ops produced for one frame.
type RenderPlan struct {
	Ops []DrawOp
}

// RenderText evaluates the animated state, applies emphasis modulation
// outside the clip's own keyframe-driven transform, sets up the canvas
// transform, and emits the background box / text-line / per-glyph draw ops
// in the order §4.E specifies: background, then text baseline=middle,
// stroke before fill, shadow via the op's Color field carrying shadow
// parameters downstream.
func RenderText(m Metrics, clip Clip, canvasW, canvasH float64, t float64) RenderPlan {
	font := Font{Family: clip.Style.FontFamily, Size: clip.Style.FontSize, Weight: clip.Style.FontWeight,
		LetterSpacing: clip.Style.LetterSpacing, LineHeight: clip.Style.LineHeight}
	layout := MeasureText(m, clip.Text, font)
	animated := CalculateAnimatedLayout(clip, layout, t)

	at := transform.Evaluate(clip.Transform, clip.Keyframes, t, layout.TotalWidth, layout.TotalHeight)

	opacity := at.Opacity
	posX, posY := at.Position.X*canvasW, at.Position.Y*canvasH
	rotRad := at.Rotation
	scaleX, scaleY := at.Scale.X, at.Scale.Y

	if clip.Emphasis != nil && emphasis.SupportedForText(clip.Emphasis.Preset) {
		es := emphasis.Evaluate(*clip.Emphasis, t)
		posX, posY, scaleX, scaleY, rotRad, opacity = emphasis.Compose(posX, posY, scaleX, scaleY, rotRad, opacity, es)
	}

	var ops []DrawOp
	ops = append(ops, DrawOp{Kind: "save"})
	ops = append(ops, DrawOp{Kind: "translate", X: posX, Y: posY})
	ops = append(ops, DrawOp{Kind: "rotate", Angle: rotRad * 3.141592653589793 / 180})
	ops = append(ops, DrawOp{Kind: "scale", SX: scaleX, SY: scaleY})
	ops = append(ops, DrawOp{Kind: "alpha", Alpha: opacity})

	if clip.Style.BackgroundColor != "" {
		ops = append(ops, DrawOp{Kind: "fillRect", Color: clip.Style.BackgroundColor, Width: layout.TotalWidth, Height: layout.TotalHeight})
	}

	if clip.Style.ShadowColor != "" {
		ops = append(ops, DrawOp{Kind: "shadow", Color: clip.Style.ShadowColor, Width: clip.Style.ShadowBlur, X: clip.Style.ShadowOffsetX, Y: clip.Style.ShadowOffsetY})
	}

	hasPerChar := clip.Animation.Preset != "" && clip.Animation.Preset != PresetNone
	if !hasPerChar {
		for _, line := range layout.Lines {
			var b []rune
			for _, c := range layout.Characters[line.CharStart:line.CharEnd] {
				b = append(b, c.Rune)
			}
			if clip.Style.StrokeColor != "" {
				ops = append(ops, DrawOp{Kind: "strokeText", Text: string(b), Y: line.Y, Color: clip.Style.StrokeColor, Width: clip.Style.StrokeWidth})
			}
			ops = append(ops, DrawOp{Kind: "fillText", Text: string(b), Y: line.Y, Color: clip.Style.Color, Font: clip.Style.FontFamily})
		}
		ops = append(ops, DrawOp{Kind: "restore"})
		return RenderPlan{Ops: ops}
	}

	for _, ac := range animated.Chars {
		ops = append(ops, DrawOp{Kind: "save"})
		ops = append(ops, DrawOp{Kind: "translate", X: ac.X + ac.OffsetX, Y: ac.Y + ac.OffsetY})
		ops = append(ops, DrawOp{Kind: "rotate", Angle: ac.Rotation * 3.141592653589793 / 180})
		ops = append(ops, DrawOp{Kind: "scale", SX: ac.ScaleX, SY: ac.ScaleY})
		ops = append(ops, DrawOp{Kind: "alpha", Alpha: opacity * ac.Opacity})
		color := clip.Style.Color
		if ac.Color != "" {
			color = ac.Color
		}
		if clip.Style.StrokeColor != "" {
			ops = append(ops, DrawOp{Kind: "strokeText", Text: string(ac.Rune), Color: clip.Style.StrokeColor, Width: clip.Style.StrokeWidth})
		}
		ops = append(ops, DrawOp{Kind: "fillText", Text: string(ac.Rune), Color: color, Font: clip.Style.FontFamily})
		ops = append(ops, DrawOp{Kind: "restore"})
	}

	ops = append(ops, DrawOp{Kind: "restore"})
	return RenderPlan{Ops: ops}
}
