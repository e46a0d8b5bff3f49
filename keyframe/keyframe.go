// Package keyframe implements the animation kernel: the flat keyframe list,
// its CRUD rules, and getValueAtTime value evaluation with the core's
// step/linear/recurse interpolation rules for mismatched value shapes.
package keyframe

import (
	"sort"

	"videocore/easing"
)

// Keyframe is a single (time, property, value, easing) tuple. Value holds
// either a float64, a map[string]interface{} (for compound properties such
// as position), or any other comparable payload — the kernel interpolates
// what it recognises and steps at the midpoint otherwise.
type Keyframe struct {
	ID       string
	Time     float64
	Property string
	Value    interface{}
	Easing   string
}

// Result is the outcome of evaluating a property's keyframes at a time.
type Result struct {
	HasValue bool
	Value    interface{}
	Left     *Keyframe
	Right    *Keyframe
	Progress float64
}

// ForProperty filters and time-sorts the keyframes belonging to one
// property, matching the "keyframes for a given property are sorted
// ascending by time at query time" invariant.
func ForProperty(kfs []Keyframe, property string) []Keyframe {
	var out []Keyframe
	for _, k := range kfs {
		if k.Property == property {
			out = append(out, k)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// GetValueAtTime implements the four-branch contract from the animation
// kernel spec: empty, before-first, after-last, and interpolated-between.
// kfs must already belong to a single property (see ForProperty); this
// function does not filter by property itself so callers can pre-sort once
// per evaluation pass.
func GetValueAtTime(kfs []Keyframe, t float64) Result {
	if len(kfs) == 0 {
		return Result{}
	}
	if t <= kfs[0].Time {
		return Result{HasValue: true, Value: kfs[0].Value, Right: &kfs[0]}
	}
	last := kfs[len(kfs)-1]
	if t >= last.Time {
		return Result{HasValue: true, Value: last.Value, Left: &last}
	}

	for i := 0; i < len(kfs)-1; i++ {
		a, b := kfs[i], kfs[i+1]
		if t >= a.Time && t <= b.Time {
			span := b.Time - a.Time
			u := 0.0
			if span > 0 {
				u = (t - a.Time) / span
			}
			ease := easing.Named(a.Easing)
			eased := ease(u)
			return Result{
				HasValue: true,
				Value:    interpolateValue(a.Value, b.Value, eased),
				Left:     &a,
				Right:    &b,
				Progress: eased,
			}
		}
	}
	// Unreachable given the bounds above, but keep evaluation total.
	return Result{HasValue: true, Value: last.Value, Left: &last}
}

// interpolateValue applies the kernel's value-interpolation rules: numeric
// linear, object-with-matching-shape recurse per key, anything else steps
// at progress 0.5.
func interpolateValue(a, b interface{}, progress float64) interface{} {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return av + (bv-av)*progress
		}
	case int:
		if bv, ok := b.(int); ok {
			return float64(av) + (float64(bv)-float64(av))*progress
		}
	case map[string]interface{}:
		if bv, ok := b.(map[string]interface{}); ok && sameShape(av, bv) {
			out := make(map[string]interface{}, len(av))
			for key, aval := range av {
				out[key] = interpolateValue(aval, bv[key], progress)
			}
			return out
		}
	}
	if progress < 0.5 {
		return a
	}
	return b
}

func sameShape(a, b map[string]interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Add inserts a keyframe, replacing any existing keyframe on the same
// (property, time) pair per the kernel's duplicate-insertion rule.
func Add(kfs []Keyframe, kf Keyframe) []Keyframe {
	for i, existing := range kfs {
		if existing.Property == kf.Property && existing.Time == kf.Time {
			kfs[i] = kf
			return kfs
		}
	}
	return append(kfs, kf)
}

// Remove deletes the keyframe with the given ID, if present.
func Remove(kfs []Keyframe, id string) []Keyframe {
	out := kfs[:0]
	for _, k := range kfs {
		if k.ID != id {
			out = append(out, k)
		}
	}
	return out
}

// Update mutates the keyframe with the given ID via fn, re-sorting within
// its property group if fn changed Time.
func Update(kfs []Keyframe, id string, fn func(*Keyframe)) []Keyframe {
	for i := range kfs {
		if kfs[i].ID == id {
			fn(&kfs[i])
		}
	}
	// Each property keeps the slots it occupies; only its own keyframes are
	// reordered by time within them.
	slots := map[string][]int{}
	for i := range kfs {
		slots[kfs[i].Property] = append(slots[kfs[i].Property], i)
	}
	for _, idx := range slots {
		group := make([]Keyframe, len(idx))
		for j, i := range idx {
			group[j] = kfs[i]
		}
		sort.SliceStable(group, func(a, b int) bool { return group[a].Time < group[b].Time })
		for j, i := range idx {
			kfs[i] = group[j]
		}
	}
	return kfs
}

// Properties returns the distinct property names present in kfs, in first-
// seen order.
func Properties(kfs []Keyframe) []string {
	seen := map[string]bool{}
	var out []string
	for _, k := range kfs {
		if !seen[k.Property] {
			seen[k.Property] = true
			out = append(out, k.Property)
		}
	}
	return out
}
