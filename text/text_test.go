package text

import "testing"

type fixedMetrics struct{ width float64 }

func (f fixedMetrics) Width(text, font string, size float64) float64 { return f.width * float64(len([]rune(text))) }

func TestMeasureTextLinesAndWords(t *testing.T) {
	layout := MeasureText(fixedMetrics{width: 10}, "Hello world\nNext", Font{Size: 20, LineHeight: 1.2})
	if len(layout.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(layout.Lines))
	}
	if len(layout.Words) != 3 {
		t.Fatalf("expected 3 words (Hello, world, Next), got %d: %+v", len(layout.Words), layout.Words)
	}
	if layout.Words[0].Text != "Hello" || layout.Words[1].Text != "world" || layout.Words[2].Text != "Next" {
		t.Fatalf("unexpected word text: %+v", layout.Words)
	}
}

func TestUnitEvaluateTypewriterStep(t *testing.T) {
	spec := AnimationSpec{Preset: PresetTypewriter, InDuration: 1, Unit: UnitCharacter}
	below := EvaluateUnit(spec, 0, 1, 0.4, 2, 0.4)
	if below.Opacity != 0 {
		t.Fatalf("expected opacity 0 before midpoint, got %v", below.Opacity)
	}
	above := EvaluateUnit(spec, 0, 1, 0.6, 2, 0.6)
	if above.Opacity != 1 {
		t.Fatalf("expected opacity 1 after midpoint, got %v", above.Opacity)
	}
}

func TestUnitDurationFloor(t *testing.T) {
	d := unitDuration(1, 100, 1)
	if d != 0.1 {
		t.Fatalf("expected floor of 0.1, got %v", d)
	}
}

func TestRenderTextProducesBalancedSaveRestore(t *testing.T) {
	clip := Clip{
		Text:      "Hi",
		Style:     Style{Color: "#fff", FontSize: 20},
		Duration:  2,
		StartTime: 0,
	}
	plan := RenderText(fixedMetrics{width: 10}, clip, 1920, 1080, 0.5)
	saves, restores := 0, 0
	for _, op := range plan.Ops {
		if op.Kind == "save" {
			saves++
		}
		if op.Kind == "restore" {
			restores++
		}
	}
	if saves != restores {
		t.Fatalf("unbalanced save/restore: %d vs %d", saves, restores)
	}
}
