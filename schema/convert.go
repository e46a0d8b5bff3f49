package schema

import (
	"encoding/json"

	"videocore/timeline"
	"videocore/transform"
)

type textLayerFields struct {
	Text      string  `json:"text"`
	FontSize  float64 `json:"fontSize"`
	Animation string  `json:"animation"`
}

type shapeLayerFields struct {
	ShapeType string `json:"shapeType"`
}

type imageLayerFields struct {
	AssetID string `json:"assetId"`
}

// Import translates an AnimationSchema's layers into a timeline Project,
// populating dedicated clip lists and default tracks per media type.
// Unsupported layer kinds (group/lottie/particle) are warned about but not
// dropped: they're carried on Project.OpaqueLayers so Export can re-emit
// them unchanged.
func Import(s AnimationSchema) (timeline.Project, ImportResult) {
	var result ImportResult
	var opaque []timeline.OpaqueLayer

	tracks := map[string]*timeline.Track{
		"text":     {ID: "text", Type: timeline.TrackText},
		"graphics": {ID: "graphics", Type: timeline.TrackGraphics},
		"video":    {ID: "video", Type: timeline.TrackVideo},
		"image":    {ID: "image", Type: timeline.TrackImage},
		"audio":    {ID: "audio", Type: timeline.TrackAudio},
	}

	for _, l := range s.Layers {
		switch l.Type {
		case "text":
			var fields textLayerFields
			_ = json.Unmarshal(l.Raw, &fields)
			tracks["text"].Clips = append(tracks["text"].Clips, timeline.Clip{
				ID: l.ID, StartTime: l.StartTime, Duration: l.Duration,
				Transform: transform.DefaultTransform(),
				OutPoint:  l.Duration,
				Payload:   &timeline.TextPayload{Text: fields.Text, FontSize: fields.FontSize, Animation: fields.Animation},
			})
		case "shape":
			var fields shapeLayerFields
			_ = json.Unmarshal(l.Raw, &fields)
			tracks["graphics"].Clips = append(tracks["graphics"].Clips, timeline.Clip{
				ID: l.ID, StartTime: l.StartTime, Duration: l.Duration,
				Transform: transform.DefaultTransform(),
				OutPoint:  l.Duration,
				Payload:   &timeline.ShapePayload{ShapeType: fields.ShapeType},
			})
		case "image":
			var fields imageLayerFields
			_ = json.Unmarshal(l.Raw, &fields)
			tracks["image"].Clips = append(tracks["image"].Clips, timeline.Clip{
				ID: l.ID, MediaID: fields.AssetID, StartTime: l.StartTime, Duration: l.Duration,
				Transform: transform.DefaultTransform(),
				OutPoint:  l.Duration,
			})
		case "video":
			var fields imageLayerFields
			_ = json.Unmarshal(l.Raw, &fields)
			tracks["video"].Clips = append(tracks["video"].Clips, timeline.Clip{
				ID: l.ID, MediaID: fields.AssetID, StartTime: l.StartTime, Duration: l.Duration,
				Transform: transform.DefaultTransform(),
				OutPoint:  l.Duration,
			})
		case "group", "lottie", "particle":
			warnUnsupportedLayer(&result, l.Type, l.ID)
			opaque = append(opaque, timeline.OpaqueLayer{
				Type: l.Type, ID: l.ID, StartTime: l.StartTime, Duration: l.Duration,
				Raw: append([]byte(nil), l.Raw...),
			})
		default:
			warnUnsupportedLayer(&result, l.Type, l.ID)
			opaque = append(opaque, timeline.OpaqueLayer{
				Type: l.Type, ID: l.ID, StartTime: l.StartTime, Duration: l.Duration,
				Raw: append([]byte(nil), l.Raw...),
			})
		}
	}

	for _, a := range s.AudioTrack {
		tracks["audio"].Clips = append(tracks["audio"].Clips, timeline.Clip{
			MediaID: a.AssetID, StartTime: a.StartTime, Duration: a.Duration, OutPoint: a.Duration,
		})
	}

	project := timeline.Project{
		Name:         s.Project,
		Width:        s.Width,
		Height:       s.Height,
		FrameRate:    s.FPS,
		MediaLibrary: map[string]timeline.MediaItem{},
		Timeline: timeline.Timeline{
			Tracks: []timeline.Track{
				*tracks["video"], *tracks["image"], *tracks["audio"], *tracks["text"], *tracks["graphics"],
			},
		},
		OpaqueLayers: opaque,
	}
	return project, result
}

// Export is the inverse of Import: it collects text/shape clips plus
// video/image/audio clips under their tracks and emits the canonical
// schema document.
func Export(p timeline.Project) AnimationSchema {
	s := AnimationSchema{
		Version:  "1.0",
		Project:  p.Name,
		Width:    p.Width,
		Height:   p.Height,
		FPS:      p.FrameRate,
		Duration: timeline.GetTimelineDuration(p.Timeline),
	}

	for _, track := range p.Timeline.Tracks {
		for _, c := range track.Clips {
			switch payload := c.Payload.(type) {
			case *timeline.TextPayload:
				raw, _ := json.Marshal(textLayerFields{Text: payload.Text, FontSize: payload.FontSize, Animation: payload.Animation})
				s.Layers = append(s.Layers, Layer{Type: "text", ID: c.ID, StartTime: c.StartTime, Duration: c.Duration, Raw: raw})
			case *timeline.ShapePayload:
				raw, _ := json.Marshal(shapeLayerFields{ShapeType: payload.ShapeType})
				s.Layers = append(s.Layers, Layer{Type: "shape", ID: c.ID, StartTime: c.StartTime, Duration: c.Duration, Raw: raw})
			default:
				switch track.Type {
				case timeline.TrackVideo:
					raw, _ := json.Marshal(imageLayerFields{AssetID: c.MediaID})
					s.Layers = append(s.Layers, Layer{Type: "video", ID: c.ID, StartTime: c.StartTime, Duration: c.Duration, Raw: raw})
				case timeline.TrackImage:
					raw, _ := json.Marshal(imageLayerFields{AssetID: c.MediaID})
					s.Layers = append(s.Layers, Layer{Type: "image", ID: c.ID, StartTime: c.StartTime, Duration: c.Duration, Raw: raw})
				case timeline.TrackAudio:
					s.AudioTrack = append(s.AudioTrack, AudioTrackEntry{AssetID: c.MediaID, StartTime: c.StartTime, Duration: c.Duration})
				}
			}
		}
	}

	for _, o := range p.OpaqueLayers {
		s.Layers = append(s.Layers, Layer{
			Type: o.Type, ID: o.ID, StartTime: o.StartTime, Duration: o.Duration,
			Raw: append(json.RawMessage(nil), o.Raw...),
		})
	}

	return s
}
