// Package timeline provides the Project/Timeline/Track/Clip data model and
// the host-facing operations that mutate it: track management, clip
// placement and trimming, and whole-project validation.
package timeline

import (
	"videocore/corerr"
	"videocore/keyframe"
	"videocore/subtitle"
	"videocore/transform"
)

// TrackType is the closed set of track kinds.
type TrackType string

const (
	TrackVideo    TrackType = "video"
	TrackAudio    TrackType = "audio"
	TrackImage    TrackType = "image"
	TrackText     TrackType = "text"
	TrackGraphics TrackType = "graphics"
)

// Marker is a named point-in-time annotation on the timeline.
type Marker struct {
	ID    string
	Time  float64
	Label string
	Color string
}

// MediaItem describes one entry in the project's media library.
type MediaItem struct {
	ID         string
	Name       string
	Type       string // video|audio|image
	Width      float64
	Height     float64
	Duration   float64
	FrameRate  float64
	SampleRate float64
	Channels   int
}

// Clip is the shared envelope every payload-carrying clip embeds.
type Clip struct {
	ID        string
	MediaID   string
	TrackID   string
	StartTime float64
	Duration  float64
	InPoint   float64
	OutPoint  float64
	Volume    float64
	Transform transform.Transform
	Keyframes []keyframe.Keyframe

	BlendMode         string
	BlendOpacity      float64
	EntryAnimation    string
	ExitAnimation     string
	EmphasisAnimation string

	// Payload is the kind-specific data: *TextPayload, *ShapePayload,
	// *SVGPayload, or *StickerPayload. A nil Payload means a plain
	// media clip (video/image/audio referencing MediaID).
	Payload interface{}
}

// TextPayload is the dedicated data a text clip carries.
type TextPayload struct {
	Text      string
	FontSize  float64
	Animation string
}

// ShapePayload is the dedicated data a shape clip carries.
type ShapePayload struct {
	ShapeType string
}

// SVGPayload is the dedicated data an SVG clip carries.
type SVGPayload struct {
	SVGContent string
	ViewBox    [4]float64
	ColorStyle string
}

// StickerPayload is the dedicated data a sticker (image overlay) clip carries.
type StickerPayload struct {
	ImageURL string
}

// Validate enforces §3's per-clip invariants.
func (c Clip) Validate() error {
	if c.Duration <= 0 {
		return corerr.New(corerr.InvalidRange, "clip duration must be > 0")
	}
	if c.InPoint < 0 || c.InPoint > c.OutPoint {
		return corerr.New(corerr.InvalidRange, "clip inPoint must be within [0, outPoint]")
	}
	if c.OutPoint-c.InPoint < c.Duration {
		return corerr.New(corerr.InvalidRange, "clip outPoint-inPoint must be >= duration unless time-stretched")
	}
	return nil
}

// Track owns an ordered list of clips plus the four mutable flags §3 calls out.
type Track struct {
	ID     string
	Type   TrackType
	Name   string
	Locked bool
	Hidden bool
	Muted  bool
	Solo   bool
	Clips  []Clip
}

// Timeline is the ordered sequence of tracks plus subtitles and markers.
type Timeline struct {
	Tracks    []Track
	Subtitles []subtitle.Subtitle
	Markers   []Marker
}

// GetTimelineDuration is the max over all clips of (startTime+duration);
// it is always recomputed, never stored.
func GetTimelineDuration(tl Timeline) float64 {
	max := 0.0
	for _, track := range tl.Tracks {
		for _, c := range track.Clips {
			end := c.StartTime + c.Duration
			if end > max {
				max = end
			}
		}
	}
	return max
}

// Project is the named top-level container owning a Timeline and a media
// library; engines hold no back-reference into it.
type Project struct {
	ID           string
	Name         string
	Width        float64
	Height       float64
	FrameRate    float64
	SampleRate   float64
	Channels     int
	MediaLibrary map[string]MediaItem
	Timeline     Timeline
	OpaqueLayers []OpaqueLayer
	CreatedAt    float64
	ModifiedAt   float64
}

// OpaqueLayer preserves a schema layer whose type has no dedicated timeline
// representation (group/lottie/particle), so it round-trips through
// Import/Export unchanged instead of being dropped.
type OpaqueLayer struct {
	Type      string
	ID        string
	StartTime float64
	Duration  float64
	Raw       []byte
}

// FindClipInProject scans tracks in order for a clip with the given ID,
// returning the track index and clip index, or (-1,-1) if not found.
func FindClipInProject(p Project, clipID string) (trackIdx, clipIdx int) {
	for ti, track := range p.Timeline.Tracks {
		for ci, c := range track.Clips {
			if c.ID == clipID {
				return ti, ci
			}
		}
	}
	return -1, -1
}

func compatibleWithTrack(trackType TrackType, c Clip) bool {
	switch trackType {
	case TrackText:
		_, ok := c.Payload.(*TextPayload)
		return ok
	case TrackGraphics:
		switch c.Payload.(type) {
		case *ShapePayload, *SVGPayload, *StickerPayload:
			return true
		}
		return false
	default:
		return true
	}
}

// Validate walks the whole project and reports every invariant violation
// from §3/§8 as a corerr.Report instead of failing at the first.
func Validate(p Project) *corerr.Report {
	report := corerr.NewReport()

	for _, track := range p.Timeline.Tracks {
		sorted := append([]Clip(nil), track.Clips...)
		sortClipsByStart(sorted)

		var prevEnd float64
		havePrev := false
		for _, c := range sorted {
			if err := c.Validate(); err != nil {
				report.Add(err)
			}
			if !compatibleWithTrack(track.Type, c) {
				report.Addf(corerr.SchemaInvalid, "clip %s payload is incompatible with track type %s", c.ID, track.Type)
			}
			if c.MediaID != "" {
				if _, ok := p.MediaLibrary[c.MediaID]; !ok {
					report.Addf(corerr.MediaMissing, "clip %s references unresolved mediaId %s", c.ID, c.MediaID)
				}
			}
			if havePrev && c.StartTime < prevEnd {
				report.Addf(corerr.InvalidRange, "clips %s overlap on track %s", c.ID, track.ID)
			}
			prevEnd = c.StartTime + c.Duration
			havePrev = true
		}
	}

	for _, s := range p.Timeline.Subtitles {
		if err := s.Validate(); err != nil {
			report.Add(err)
		}
	}

	return report
}

func sortClipsByStart(clips []Clip) {
	for i := 1; i < len(clips); i++ {
		for j := i; j > 0 && clips[j].StartTime < clips[j-1].StartTime; j-- {
			clips[j], clips[j-1] = clips[j-1], clips[j]
		}
	}
}
