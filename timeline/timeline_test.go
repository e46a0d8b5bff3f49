package timeline

import (
	"testing"

	"videocore/transform"
)

func baseClip(id, trackID string, start, dur float64) Clip {
	return Clip{
		ID: id, TrackID: trackID, StartTime: start, Duration: dur,
		InPoint: 0, OutPoint: dur, Transform: transform.DefaultTransform(),
	}
}

func sampleTimeline() Timeline {
	return Timeline{Tracks: []Track{
		{ID: "t1", Type: TrackVideo, Clips: []Clip{
			baseClip("a", "t1", 0, 2),
			baseClip("b", "t1", 2, 3),
		}},
	}}
}

func TestGetTimelineDuration(t *testing.T) {
	tl := sampleTimeline()
	if d := GetTimelineDuration(tl); d != 5 {
		t.Fatalf("expected duration 5, got %v", d)
	}
}

func TestAddClipRejectsOverlap(t *testing.T) {
	tl := sampleTimeline()
	overlapping := baseClip("c", "t1", 1, 1)
	if _, err := AddClip(tl, overlapping); err == nil {
		t.Fatal("expected overlap to be rejected")
	}
}

func TestAddClipRejectsOnLockedTrack(t *testing.T) {
	tl := Timeline{Tracks: []Track{{ID: "t1", Type: TrackVideo, Locked: true}}}
	if _, err := AddClip(tl, baseClip("a", "t1", 0, 1)); err == nil {
		t.Fatal("expected locked track to reject clip addition")
	}
}

func TestSplitClipRejectsExactBoundary(t *testing.T) {
	tl := sampleTimeline()
	if _, err := SplitClip(tl, "a", 0); err == nil {
		t.Fatal("expected error splitting at exact start")
	}
	if _, err := SplitClip(tl, "a", 2); err == nil {
		t.Fatal("expected error splitting at exact end")
	}
}

func TestSplitClipDurationsSumToOriginal(t *testing.T) {
	tl := sampleTimeline()
	next, err := SplitClip(tl, "b", 3.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var total float64
	for _, c := range next.Tracks[0].Clips {
		if c.ID == "b" || c.ID == "b-b" {
			total += c.Duration
		}
	}
	if diff := total - 3; diff > 0.0001 || diff < -0.0001 {
		t.Fatalf("expected split durations to sum to 3, got %v", total)
	}
}

func TestRippleDeleteShiftsLaterClips(t *testing.T) {
	tl := sampleTimeline()
	next, err := RippleDeleteClip(tl, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next.Tracks[0].Clips) != 1 {
		t.Fatalf("expected 1 clip remaining, got %d", len(next.Tracks[0].Clips))
	}
	if next.Tracks[0].Clips[0].StartTime != 0 {
		t.Fatalf("expected later clip shifted to start 0, got %v", next.Tracks[0].Clips[0].StartTime)
	}
}

func TestSlipClipPreservesStartAndDuration(t *testing.T) {
	tl := sampleTimeline()
	next, err := SlipClip(tl, "a", 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := next.Tracks[0].Clips[0]
	if c.StartTime != 0 || c.Duration != 2 {
		t.Fatalf("expected startTime/duration unchanged, got start=%v duration=%v", c.StartTime, c.Duration)
	}
	if c.InPoint != 0.5 {
		t.Fatalf("expected inPoint shifted, got %v", c.InPoint)
	}
}

func TestSlipClipRejectsNegativeInPoint(t *testing.T) {
	tl := sampleTimeline()
	if _, err := SlipClip(tl, "a", -1); err == nil {
		t.Fatal("expected error sliding inPoint below zero")
	}
}

func TestMoveClipRejectsCrossTypeTrack(t *testing.T) {
	tl := Timeline{Tracks: []Track{
		{ID: "t1", Type: TrackVideo, Clips: []Clip{baseClip("a", "t1", 0, 2)}},
		{ID: "t2", Type: TrackAudio},
	}}
	if _, err := MoveClip(tl, "a", 5, "t2"); err == nil {
		t.Fatal("expected error moving a clip across incompatible track types")
	}
}

func TestTrimClipUpdatesDuration(t *testing.T) {
	tl := sampleTimeline()
	next, err := TrimClip(tl, "b", 0.5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := next.Tracks[0].Clips[1]
	if diff := c.Duration - 1.5; diff > 0.0001 || diff < -0.0001 {
		t.Fatalf("expected duration 1.5, got %v", c.Duration)
	}
}

func TestValidateReportsOverlapAndMissingMedia(t *testing.T) {
	c := baseClip("a", "t1", 0, 2)
	c.MediaID = "missing"
	p := Project{
		MediaLibrary: map[string]MediaItem{},
		Timeline:     Timeline{Tracks: []Track{{ID: "t1", Type: TrackVideo, Clips: []Clip{c}}}},
	}
	report := Validate(p)
	if report.Success {
		t.Fatal("expected validation to fail for unresolved mediaId")
	}
	if len(report.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

func TestFindClipInProject(t *testing.T) {
	p := Project{Timeline: sampleTimeline()}
	ti, ci := FindClipInProject(p, "b")
	if ti != 0 || ci != 1 {
		t.Fatalf("expected (0,1), got (%d,%d)", ti, ci)
	}
	ti, ci = FindClipInProject(p, "nonexistent")
	if ti != -1 || ci != -1 {
		t.Fatalf("expected (-1,-1) for missing clip, got (%d,%d)", ti, ci)
	}
}
