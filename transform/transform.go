// Package transform evaluates a clip's animated Transform from its base
// value and keyframes, and composes the 2D affine matrix downstream
// renderers use to place the rasterised layer.
package transform

import (
	"math"

	"videocore/keyframe"
)

// Vec2 is a 2D point or scale pair.
type Vec2 struct{ X, Y float64 }

// Transform matches §3's Transform data model exactly: position/scale/
// rotation/anchor/opacity plus optional 3-D rotation and perspective.
type Transform struct {
	Position     Vec2
	Scale        Vec2
	Rotation     float64 // degrees
	Anchor       Vec2    // normalized [0,1]
	Opacity      float64 // [0,1]
	Rotate3D     Vec2Z
	Perspective  float64
	HasRotate3D  bool
	HasPerspect  bool
}

// Vec2Z is a 3-axis vector, used only for Rotate3D.
type Vec2Z struct{ X, Y, Z float64 }

// Matrix2D is a 2x3 affine matrix [a b c d e f] applied as
// x' = a*x + c*y + e, y' = b*x + d*y + f.
type Matrix2D struct{ A, B, C, D, E, F float64 }

// Identity2D returns the identity affine matrix.
func Identity2D() Matrix2D { return Matrix2D{A: 1, D: 1} }

func (m Matrix2D) multiply(o Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

func translate(x, y float64) Matrix2D { return Matrix2D{A: 1, D: 1, E: x, F: y} }
func scaleM(x, y float64) Matrix2D    { return Matrix2D{A: x, D: y} }
func rotateM(deg float64) Matrix2D {
	r := deg * math.Pi / 180
	c, s := math.Cos(r), math.Sin(r)
	return Matrix2D{A: c, B: s, C: -s, D: c}
}

// AnimatedTransform is the fully-evaluated transform for one clip at one
// time, plus its composed matrix for rasterisation.
type AnimatedTransform struct {
	Transform
	Matrix Matrix2D
}

// animatable lists the dotted property paths the kernel may drive.
var animatable = []string{
	"position.x", "position.y", "scale.x", "scale.y", "rotation", "opacity",
	"anchor.x", "anchor.y", "rotate3d.x", "rotate3d.y", "rotate3d.z", "perspective",
}

// Evaluate substitutes keyframe-driven properties into a clone of base,
// clamps opacity to [0,1] and perspective to >=0, and composes the 2D
// affine matrix anchor -> rotate -> scale -> translate for rasterisation.
// w,h are the layer's own pixel dimensions, used to convert the normalized
// anchor into a pixel offset for the anchor->translate step.
func Evaluate(base Transform, kfs []keyframe.Keyframe, t float64, w, h float64) AnimatedTransform {
	out := base

	for _, prop := range animatable {
		group := keyframe.ForProperty(kfs, prop)
		if len(group) == 0 {
			continue
		}
		r := keyframe.GetValueAtTime(group, t)
		if !r.HasValue {
			continue
		}
		v, ok := asFloat(r.Value)
		if !ok {
			continue
		}
		switch prop {
		case "position.x":
			out.Position.X = v
		case "position.y":
			out.Position.Y = v
		case "scale.x":
			out.Scale.X = v
		case "scale.y":
			out.Scale.Y = v
		case "rotation":
			out.Rotation = v
		case "opacity":
			out.Opacity = v
		case "anchor.x":
			out.Anchor.X = v
		case "anchor.y":
			out.Anchor.Y = v
		case "rotate3d.x":
			out.Rotate3D.X = v
			out.HasRotate3D = true
		case "rotate3d.y":
			out.Rotate3D.Y = v
			out.HasRotate3D = true
		case "rotate3d.z":
			out.Rotate3D.Z = v
			out.HasRotate3D = true
		case "perspective":
			out.Perspective = v
			out.HasPerspect = true
		}
	}

	if out.Opacity < 0 {
		out.Opacity = 0
	}
	if out.Opacity > 1 {
		out.Opacity = 1
	}
	if out.Perspective < 0 {
		out.Perspective = 0
	}

	anchorPx := Vec2{X: out.Anchor.X * w, Y: out.Anchor.Y * h}

	m := translate(out.Position.X, out.Position.Y)
	m = m.multiply(rotateM(out.Rotation))
	m = m.multiply(scaleM(scaleOrDefault(out.Scale.X), scaleOrDefault(out.Scale.Y)))
	m = m.multiply(translate(-anchorPx.X, -anchorPx.Y))

	return AnimatedTransform{Transform: out, Matrix: m}
}

func scaleOrDefault(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// DefaultTransform is the identity transform used as a clip's base when not
// otherwise specified: centred anchor, unit scale, full opacity.
func DefaultTransform() Transform {
	return Transform{
		Scale:   Vec2{X: 1, Y: 1},
		Anchor:  Vec2{X: 0.5, Y: 0.5},
		Opacity: 1,
	}
}
