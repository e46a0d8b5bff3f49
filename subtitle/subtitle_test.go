package subtitle

import (
	"strings"
	"testing"
)

func sampleSubs() []Subtitle {
	return []Subtitle{
		{ID: "a", Text: "Hello there", StartTime: 0, EndTime: 2},
		{ID: "b", Text: "General Kenobi", StartTime: 2.05, EndTime: 4},
	}
}

func TestSRTRoundTrip(t *testing.T) {
	subs := sampleSubs()
	srt := Emit(subs)
	result := Parse(srt)
	if !result.Success {
		t.Fatalf("expected successful parse, got errors: %v", result.Errors)
	}
	if len(result.Subtitles) != len(subs) {
		t.Fatalf("expected %d subtitles, got %d", len(subs), len(result.Subtitles))
	}
	for i, s := range result.Subtitles {
		if s.Text != subs[i].Text {
			t.Fatalf("text mismatch at %d: got %q want %q", i, s.Text, subs[i].Text)
		}
		if diff := s.StartTime - subs[i].StartTime; diff > 0.001 || diff < -0.001 {
			t.Fatalf("startTime mismatch at %d: got %v want %v", i, s.StartTime, subs[i].StartTime)
		}
		if diff := s.EndTime - subs[i].EndTime; diff > 0.001 || diff < -0.001 {
			t.Fatalf("endTime mismatch at %d: got %v want %v", i, s.EndTime, subs[i].EndTime)
		}
	}
}

func TestParseGoodSRT(t *testing.T) {
	srt := "1\n00:00:01,000 --> 00:00:03,500\nHello world\n\n2\n00:00:04,000 --> 00:00:06,000\nSecond line\n"
	result := Parse(srt)
	if !result.Success || len(result.Errors) != 0 {
		t.Fatalf("expected clean parse, got errors: %v", result.Errors)
	}
	if len(result.Subtitles) != 2 {
		t.Fatalf("expected 2 subtitles, got %d", len(result.Subtitles))
	}
	if result.Subtitles[0].StartTime != 1 || result.Subtitles[0].EndTime != 3.5 {
		t.Fatalf("unexpected timing: %+v", result.Subtitles[0])
	}
}

func TestParseBadSRTCollectsErrors(t *testing.T) {
	srt := "1\n00:00:01,000 --> 00:99:02,500\nBad minutes\n\n2\n00:00:04,000 --> 00:00:06,000\nGood block\n"
	result := Parse(srt)
	if result.Success {
		t.Fatal("expected Success=false with a malformed block")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(result.Errors), result.Errors)
	}
	if len(result.Subtitles) != 1 {
		t.Fatalf("expected the good block to still parse, got %d subtitles", len(result.Subtitles))
	}
}

func TestSplitRejectsExactBoundary(t *testing.T) {
	tl := Timeline{Subtitles: sampleSubs()}
	if res := Split(tl, "a", 0); res.Error == nil {
		t.Fatal("expected error splitting at exact startTime")
	}
	if res := Split(tl, "a", 2); res.Error == nil {
		t.Fatal("expected error splitting at exact endTime")
	}
}

func TestSplitProducesTwoSubtitles(t *testing.T) {
	tl := Timeline{Subtitles: []Subtitle{
		{ID: "a", Text: "x", StartTime: 0, EndTime: 2, Words: []Word{
			{Text: "Hello", StartTime: 0, EndTime: 1},
			{Text: "there", StartTime: 1, EndTime: 2},
		}},
	}}
	res := Split(tl, "a", 1)
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if len(res.Timeline.Subtitles) != 2 {
		t.Fatalf("expected 2 subtitles after split, got %d", len(res.Timeline.Subtitles))
	}
	first, second := res.Timeline.Subtitles[0], res.Timeline.Subtitles[1]
	if first.EndTime != 1 || second.StartTime != 1 {
		t.Fatalf("expected split at t=1, got %+v / %+v", first, second)
	}
	if len(first.Words) != 1 || len(second.Words) != 1 {
		t.Fatalf("expected words split 1/1, got %d/%d", len(first.Words), len(second.Words))
	}
}

func TestMergeAdjacentConcatenatesWords(t *testing.T) {
	tl := Timeline{Subtitles: []Subtitle{
		{ID: "a", Text: "Hello", StartTime: 0, EndTime: 1, Words: []Word{{Text: "Hello", StartTime: 0, EndTime: 1}}},
		{ID: "b", Text: "World", StartTime: 1.02, EndTime: 2, Words: []Word{{Text: "World", StartTime: 1.02, EndTime: 2}}},
	}}
	res := MergeAdjacent(tl, 0.1)
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if len(res.Timeline.Subtitles) != 1 {
		t.Fatalf("expected merge into a single subtitle, got %d", len(res.Timeline.Subtitles))
	}
	merged := res.Timeline.Subtitles[0]
	if !strings.Contains(merged.Text, "Hello") || !strings.Contains(merged.Text, "World") {
		t.Fatalf("expected merged text to contain both, got %q", merged.Text)
	}
	if len(merged.Words) != 2 {
		t.Fatalf("expected both words[] arrays preserved and concatenated, got %d", len(merged.Words))
	}
}

func TestShiftAllPreservesSpansAndClampsToZero(t *testing.T) {
	tl := Timeline{Subtitles: sampleSubs()}
	res := ShiftAll(tl, -10)
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	for i, s := range res.Timeline.Subtitles {
		if s.StartTime < -0.0001 {
			t.Fatalf("subtitle %d startTime went negative: %v", i, s.StartTime)
		}
		origSpan := sampleSubs()[i].EndTime - sampleSubs()[i].StartTime
		gotSpan := s.EndTime - s.StartTime
		if diff := origSpan - gotSpan; diff > 0.001 || diff < -0.001 {
			t.Fatalf("subtitle %d span changed: got %v want %v", i, gotSpan, origSpan)
		}
	}
}

func TestApplyStylePresetUnknownErrors(t *testing.T) {
	tl := Timeline{Subtitles: sampleSubs()}
	res := ApplyStylePreset(tl, "a", StylePreset("nonexistent"))
	if res.Error == nil {
		t.Fatal("expected error for unknown style preset")
	}
}

func TestApplyStylePresetKnown(t *testing.T) {
	tl := Timeline{Subtitles: sampleSubs()}
	res := ApplyStylePreset(tl, "a", StyleKaraokeBar)
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if res.Timeline.Subtitles[0].Style.FontFamily != "Verdana" {
		t.Fatalf("expected karaoke-bar style applied, got %+v", res.Timeline.Subtitles[0].Style)
	}
}

func wordSubtitle() Subtitle {
	return Subtitle{
		ID:   "a",
		Text: "Hello there friend",
		Words: []Word{
			{Text: "Hello", StartTime: 0, EndTime: 0.5},
			{Text: "there", StartTime: 0.5, EndTime: 1},
			{Text: "friend", StartTime: 1, EndTime: 1.5},
		},
		StartTime: 0, EndTime: 1.5,
	}
}

func TestRenderCaptionWordHighlight(t *testing.T) {
	out := RenderCaption(wordSubtitle(), CaptionWordHighlight, 0.6)
	if len(out) != 3 {
		t.Fatalf("expected 3 word states, got %d", len(out))
	}
	if !out[1].Highlight || out[1].Scale != 1.15 {
		t.Fatalf("expected active word highlighted at scale 1.15, got %+v", out[1])
	}
	if out[0].Highlight || out[2].Highlight {
		t.Fatalf("expected only the active word highlighted, got %+v", out)
	}
}

func TestRenderCaptionWordByWordPersistsAfterLast(t *testing.T) {
	out := RenderCaption(wordSubtitle(), CaptionWordByWord, 100)
	if len(out) != 1 || out[0].Text != "friend" {
		t.Fatalf("expected last word to persist, got %+v", out)
	}
}

func TestRenderCaptionKaraokeProgress(t *testing.T) {
	out := RenderCaption(wordSubtitle(), CaptionKaraoke, 0.75)
	if !out[0].Highlight {
		t.Fatalf("expected first word fully highlighted, got %+v", out[0])
	}
	if out[1].Progress < 0.49 || out[1].Progress > 0.51 {
		t.Fatalf("expected second word ~50%% progress, got %v", out[1].Progress)
	}
	if !out[2].Muted {
		t.Fatalf("expected third word muted before its start, got %+v", out[2])
	}
}

func TestRenderCaptionBounceSkipsFutureWords(t *testing.T) {
	out := RenderCaption(wordSubtitle(), CaptionBounce, 0.2)
	if len(out) != 1 {
		t.Fatalf("expected only the started word to be present, got %d", len(out))
	}
}

func TestRenderCaptionTypewriterFadesInLastWord(t *testing.T) {
	out := RenderCaption(wordSubtitle(), CaptionTypewriter, 1.05)
	if len(out) != 3 {
		t.Fatalf("expected all started words present, got %d", len(out))
	}
	if out[2].Opacity <= 0 || out[2].Opacity >= 1 {
		t.Fatalf("expected last word mid-fade, got opacity %v", out[2].Opacity)
	}
	if out[0].Opacity != 1 {
		t.Fatalf("expected earlier words fully opaque, got %v", out[0].Opacity)
	}
}
