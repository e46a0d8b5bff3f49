// Package schema implements the portable JSON AnimationSchema document:
// validation, {{variable}} substitution, and import/export to the timeline
// model.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"videocore/corerr"
)

// Asset is one entry in an asset table (fonts/images/videos/audio/lottie).
type Asset struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Assets groups the asset tables by kind.
type Assets struct {
	Fonts  []Asset `json:"fonts,omitempty"`
	Images []Asset `json:"images,omitempty"`
	Videos []Asset `json:"videos,omitempty"`
	Audio  []Asset `json:"audio,omitempty"`
	Lottie []Asset `json:"lottie,omitempty"`
}

// Layer is one flat, ordered entry in the schema's layer list. Raw carries
// the type-specific fields (e.g. a text layer's `text`/`fontSize`); it is
// merged with the envelope fields on marshal and split back out on
// unmarshal so the document round-trips through a single flat JSON object
// per layer.
type Layer struct {
	Type      string          `json:"type"` // text|image|video|shape|lottie|particle|group
	ID        string          `json:"id"`
	StartTime float64         `json:"startTime"`
	Duration  float64         `json:"duration"`
	Raw       json.RawMessage `json:"-"`
}

type layerEnvelope struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
}

// MarshalJSON flattens the envelope fields and Raw's type-specific fields
// into one JSON object.
func (l Layer) MarshalJSON() ([]byte, error) {
	envelope, err := json.Marshal(layerEnvelope{Type: l.Type, ID: l.ID, StartTime: l.StartTime, Duration: l.Duration})
	if err != nil {
		return nil, err
	}
	if len(l.Raw) == 0 {
		return envelope, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(envelope, &merged); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	if err := json.Unmarshal(l.Raw, &extra); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// UnmarshalJSON splits a flat layer object back into the envelope fields
// plus Raw (the original object, for type-specific field lookups).
func (l *Layer) UnmarshalJSON(data []byte) error {
	var envelope layerEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	l.Type = envelope.Type
	l.ID = envelope.ID
	l.StartTime = envelope.StartTime
	l.Duration = envelope.Duration
	l.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// AudioTrackEntry is one entry in the optional audio track list.
type AudioTrackEntry struct {
	AssetID   string  `json:"assetId"`
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
}

// AnimationSchema is the portable JSON project document.
type AnimationSchema struct {
	Version    string            `json:"version"`
	Project    string            `json:"project"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	FPS        float64           `json:"fps"`
	Duration   float64           `json:"duration"`
	Background string            `json:"background,omitempty"`
	Assets     Assets            `json:"assets,omitempty"`
	Layers     []Layer           `json:"layers"`
	AudioTrack []AudioTrackEntry `json:"audioTrack,omitempty"`
	Variables  map[string]string `json:"variables,omitempty"`
}

// Validate checks presence of version/project, positivity of
// width/height/fps/duration, and that layers is present. Every failure
// contributes a string to the returned Report; the schema is rejected only
// if at least one failure was recorded.
func Validate(s AnimationSchema) *corerr.Report {
	report := corerr.NewReport()

	if strings.TrimSpace(s.Version) == "" {
		report.Add(corerr.New(corerr.SchemaInvalid, "missing required field: version"))
	}
	if strings.TrimSpace(s.Project) == "" {
		report.Add(corerr.New(corerr.SchemaInvalid, "missing required field: project"))
	}
	if s.Width <= 0 {
		report.Add(corerr.New(corerr.SchemaInvalid, "width must be positive"))
	}
	if s.Height <= 0 {
		report.Add(corerr.New(corerr.SchemaInvalid, "height must be positive"))
	}
	if s.FPS <= 0 {
		report.Add(corerr.New(corerr.SchemaInvalid, "fps must be positive"))
	}
	if s.Duration <= 0 {
		report.Add(corerr.New(corerr.SchemaInvalid, "duration must be positive"))
	}
	if s.Layers == nil {
		report.Add(corerr.New(corerr.SchemaInvalid, "layers must be an array"))
	}

	return report
}

var variableRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_.-]+)\}\}`)

// MergeVariables merges schema-declared variables with caller-supplied
// overrides, caller values winning on conflict.
func MergeVariables(schemaVars, callerVars map[string]string) map[string]string {
	merged := make(map[string]string, len(schemaVars)+len(callerVars))
	for k, v := range schemaVars {
		merged[k] = v
	}
	for k, v := range callerVars {
		merged[k] = v
	}
	return merged
}

// SubstituteVariables serialises s and performs a single text-replace pass
// over it, replacing {{name}} with the merged variable map's value. Strings
// are inlined as-is; other JSON values are left to the caller pre-encoded
// into the variable map. Missing variables are preserved literally.
func SubstituteVariables(s AnimationSchema, callerVars map[string]string) (AnimationSchema, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return s, corerr.Wrap(corerr.SchemaInvalid, "failed to serialise schema for substitution", err)
	}

	merged := MergeVariables(s.Variables, callerVars)
	substituted := variableRe.ReplaceAllStringFunc(string(raw), func(match string) string {
		name := variableRe.FindStringSubmatch(match)[1]
		val, ok := merged[name]
		if !ok {
			return match
		}
		return val
	})

	var out AnimationSchema
	if err := json.Unmarshal([]byte(substituted), &out); err != nil {
		return s, corerr.Wrap(corerr.SchemaInvalid, "substituted schema is not valid JSON", err)
	}
	return out, nil
}

// ImportResult carries the non-fatal warnings for layer types that were
// recognised but not dropped.
type ImportResult struct {
	Warnings []string
}

func warnUnsupportedLayer(result *ImportResult, layerType, id string) {
	result.Warnings = append(result.Warnings, fmt.Sprintf("layer %q of type %q is not dropped but has no dedicated import handler", id, layerType))
}
