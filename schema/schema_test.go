package schema

import (
	"encoding/json"
	"testing"

	"videocore/timeline"
)

func minimalSchema() AnimationSchema {
	return AnimationSchema{
		Version:  "1.0",
		Project:  "demo",
		Width:    1920,
		Height:   1080,
		FPS:      30,
		Duration: 10,
		Layers:   []Layer{},
	}
}

func TestValidateAcceptsMinimalSchema(t *testing.T) {
	report := Validate(minimalSchema())
	if !report.Success {
		t.Fatalf("expected success, got errors: %v", report.Errors)
	}
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	s := AnimationSchema{}
	report := Validate(s)
	if report.Success {
		t.Fatal("expected failure for an empty schema")
	}
	if len(report.Errors) < 5 {
		t.Fatalf("expected every missing/invalid field recorded, got %d errors", len(report.Errors))
	}
}

func TestValidateRejectsNilLayers(t *testing.T) {
	s := minimalSchema()
	s.Layers = nil
	report := Validate(s)
	if report.Success {
		t.Fatal("expected failure when layers is not an array")
	}
}

func TestMergeVariablesCallerWins(t *testing.T) {
	merged := MergeVariables(map[string]string{"name": "schema"}, map[string]string{"name": "caller"})
	if merged["name"] != "caller" {
		t.Fatalf("expected caller value to win, got %q", merged["name"])
	}
}

func TestSubstituteVariablesReplacesPlaceholder(t *testing.T) {
	s := minimalSchema()
	s.Background = "{{bgColor}}"
	out, err := SubstituteVariables(s, map[string]string{"bgColor": "#112233"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Background != "#112233" {
		t.Fatalf("expected substituted background, got %q", out.Background)
	}
}

func TestSubstituteVariablesPreservesMissing(t *testing.T) {
	s := minimalSchema()
	s.Background = "{{undeclared}}"
	out, err := SubstituteVariables(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Background != "{{undeclared}}" {
		t.Fatalf("expected missing variable preserved literally, got %q", out.Background)
	}
}

func TestLayerRoundTripsThroughJSON(t *testing.T) {
	raw, _ := json.Marshal(textLayerFields{Text: "hello", FontSize: 24})
	layer := Layer{Type: "text", ID: "l1", StartTime: 1, Duration: 2, Raw: raw}

	encoded, err := json.Marshal(layer)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var decoded Layer
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if decoded.Type != "text" || decoded.ID != "l1" || decoded.Duration != 2 {
		t.Fatalf("envelope fields did not round-trip: %+v", decoded)
	}
	var fields textLayerFields
	if err := json.Unmarshal(decoded.Raw, &fields); err != nil {
		t.Fatalf("unexpected error decoding raw fields: %v", err)
	}
	if fields.Text != "hello" || fields.FontSize != 24 {
		t.Fatalf("type-specific fields did not round-trip: %+v", fields)
	}
}

func TestImportPopulatesDedicatedTracksAndWarnsOnUnsupported(t *testing.T) {
	textRaw, _ := json.Marshal(textLayerFields{Text: "Hi", FontSize: 32})
	shapeRaw, _ := json.Marshal(shapeLayerFields{ShapeType: "circle"})
	s := minimalSchema()
	s.Layers = []Layer{
		{Type: "text", ID: "t1", StartTime: 0, Duration: 2, Raw: textRaw},
		{Type: "shape", ID: "s1", StartTime: 0, Duration: 2, Raw: shapeRaw},
		{Type: "group", ID: "g1", StartTime: 0, Duration: 2},
	}
	project, result := Import(s)
	if len(result.Warnings) != 1 {
		t.Fatalf("expected exactly one warning for the group layer, got %d: %v", len(result.Warnings), result.Warnings)
	}

	var textCount, shapeCount int
	for _, track := range project.Timeline.Tracks {
		for _, c := range track.Clips {
			switch c.Payload.(type) {
			case *timeline.TextPayload:
				textCount++
			case *timeline.ShapePayload:
				shapeCount++
			}
		}
	}
	if textCount != 1 || shapeCount != 1 {
		t.Fatalf("expected 1 text clip and 1 shape clip imported, got text=%d shape=%d", textCount, shapeCount)
	}
}

func TestExportCollectsClipsUnderCanonicalLayers(t *testing.T) {
	p := timeline.Project{
		Name: "demo", Width: 1920, Height: 1080, FrameRate: 30,
		Timeline: timeline.Timeline{Tracks: []timeline.Track{
			{ID: "text", Type: timeline.TrackText, Clips: []timeline.Clip{
				{ID: "t1", StartTime: 0, Duration: 2, Payload: &timeline.TextPayload{Text: "hi"}},
			}},
		}},
	}
	s := Export(p)
	if len(s.Layers) != 1 || s.Layers[0].Type != "text" {
		t.Fatalf("expected one text layer exported, got %+v", s.Layers)
	}
}
