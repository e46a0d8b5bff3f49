package keyframe

import "testing"

func opacityKfs() []Keyframe {
	return []Keyframe{
		{ID: "k1", Time: 0, Property: "opacity", Value: 0.0, Easing: "linear"},
		{ID: "k2", Time: 1, Property: "opacity", Value: 1.0, Easing: "linear"},
	}
}

func TestKeyframeBoundarySampling(t *testing.T) {
	kfs := opacityKfs()
	for _, kf := range kfs {
		r := GetValueAtTime(kfs, kf.Time)
		if r.Value.(float64) != kf.Value.(float64) {
			t.Fatalf("boundary sample at %v: got %v want %v", kf.Time, r.Value, kf.Value)
		}
	}
	if r := GetValueAtTime(kfs, -1); r.Value.(float64) != 0 {
		t.Fatalf("before-first sample: got %v want 0", r.Value)
	}
	if r := GetValueAtTime(kfs, 5); r.Value.(float64) != 1 {
		t.Fatalf("after-last sample: got %v want 1", r.Value)
	}
}

func TestS1KeyframeEval(t *testing.T) {
	kfs := opacityKfs()
	r := GetValueAtTime(kfs, 0.5)
	if v := r.Value.(float64); v < 0.49 || v > 0.51 {
		t.Fatalf("eval(0.5)=%v want ~0.5", v)
	}
	if GetValueAtTime(kfs, 0).Value.(float64) != 0 {
		t.Fatalf("eval(0) must equal 0")
	}
	if GetValueAtTime(kfs, 1).Value.(float64) != 1 {
		t.Fatalf("eval(1) must equal 1")
	}
}

func TestEmptyKeyframes(t *testing.T) {
	r := GetValueAtTime(nil, 0.5)
	if r.HasValue {
		t.Fatalf("expected no value for empty keyframe list")
	}
}

func TestMismatchedShapeSteps(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Property: "x", Value: 1.0},
		{Time: 1, Property: "x", Value: "not-a-number"},
	}
	below := GetValueAtTime(kfs, 0.25)
	if below.Value != 1.0 {
		t.Fatalf("step before midpoint should hold A, got %v", below.Value)
	}
	above := GetValueAtTime(kfs, 0.75)
	if above.Value != "not-a-number" {
		t.Fatalf("step after midpoint should hold B, got %v", above.Value)
	}
}

func TestObjectRecursiveInterpolation(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Property: "position", Value: map[string]interface{}{"x": 0.0, "y": 0.0}},
		{Time: 1, Property: "position", Value: map[string]interface{}{"x": 10.0, "y": 20.0}},
	}
	r := GetValueAtTime(kfs, 0.5)
	v := r.Value.(map[string]interface{})
	if v["x"].(float64) < 4.9 || v["x"].(float64) > 5.1 {
		t.Fatalf("x=%v want ~5", v["x"])
	}
	if v["y"].(float64) < 9.9 || v["y"].(float64) > 10.1 {
		t.Fatalf("y=%v want ~10", v["y"])
	}
}

func TestAddReplacesOnPropertyTime(t *testing.T) {
	kfs := opacityKfs()
	kfs = Add(kfs, Keyframe{ID: "k1-new", Time: 0, Property: "opacity", Value: 0.5})
	if len(kfs) != 2 {
		t.Fatalf("expected replace not append, len=%d", len(kfs))
	}
	if kfs[0].Value.(float64) != 0.5 {
		t.Fatalf("expected replaced value 0.5, got %v", kfs[0].Value)
	}
}

func TestRemoveByID(t *testing.T) {
	kfs := opacityKfs()
	kfs = Remove(kfs, "k1")
	if len(kfs) != 1 || kfs[0].ID != "k2" {
		t.Fatalf("expected only k2 to remain, got %+v", kfs)
	}
}

func TestUpdateResorts(t *testing.T) {
	kfs := opacityKfs()
	kfs = Update(kfs, "k2", func(k *Keyframe) { k.Time = -1 })
	sorted := ForProperty(kfs, "opacity")
	if sorted[0].ID != "k2" {
		t.Fatalf("expected k2 first after resort, got %+v", sorted)
	}
}
