package transform

import (
	"math"
	"testing"

	"videocore/keyframe"
)

func TestEvaluateAppliesKeyframesAndClamps(t *testing.T) {
	base := DefaultTransform()
	kfs := []keyframe.Keyframe{
		{Time: 0, Property: "opacity", Value: 0.0, Easing: "linear"},
		{Time: 1, Property: "opacity", Value: 2.0, Easing: "linear"}, // out of range on purpose
		{Time: 0, Property: "position.x", Value: 0.0},
		{Time: 1, Property: "position.x", Value: 100.0},
	}

	at := Evaluate(base, kfs, 1, 200, 200)
	if at.Opacity != 1 {
		t.Fatalf("expected opacity clamp to 1, got %v", at.Opacity)
	}
	if at.Position.X != 100 {
		t.Fatalf("expected position.x=100, got %v", at.Position.X)
	}
}

func TestEvaluateMatrixIdentityAtRest(t *testing.T) {
	base := DefaultTransform()
	at := Evaluate(base, nil, 0, 100, 100)
	// Anchor at centre with no rotation/position/scale delta should map the
	// anchor point back onto the origin (translate cancels the anchor
	// offset since position is zero).
	x := at.Matrix.A*50 + at.Matrix.C*50 + at.Matrix.E
	y := at.Matrix.B*50 + at.Matrix.D*50 + at.Matrix.F
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("expected anchor to map to origin, got (%v,%v)", x, y)
	}
}

func TestZeroScaleDefaultsToUnit(t *testing.T) {
	base := Transform{} // Scale left as zero value
	at := Evaluate(base, nil, 0, 10, 10)
	if at.Matrix.A != 1 || at.Matrix.D != 1 {
		t.Fatalf("expected zero scale to default to 1, got A=%v D=%v", at.Matrix.A, at.Matrix.D)
	}
}
