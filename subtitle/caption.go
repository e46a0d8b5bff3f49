package subtitle

import "videocore/easing"

// CaptionStyle names the closed set of animated caption renderers.
type CaptionStyle string

const (
	CaptionNone         CaptionStyle = "none"
	CaptionWordHighlight CaptionStyle = "word-highlight"
	CaptionWordByWord   CaptionStyle = "word-by-word"
	CaptionKaraoke      CaptionStyle = "karaoke"
	CaptionBounce       CaptionStyle = "bounce"
	CaptionTypewriter   CaptionStyle = "typewriter"
)

// WordState is one word's rendered state for one frame.
type WordState struct {
	Text      string
	Visible   bool
	Highlight bool
	Muted     bool
	Scale     float64
	OffsetY   float64
	Progress  float64 // karaoke fill fraction, [0,1]
	Opacity   float64
}

// RenderCaption evaluates s's word array at time t using the named style.
func RenderCaption(s Subtitle, style CaptionStyle, t float64) []WordState {
	if len(s.Words) == 0 || style == CaptionNone {
		return []WordState{{Text: s.Text, Visible: true, Scale: 1, Opacity: 1}}
	}

	switch style {
	case CaptionWordHighlight:
		out := make([]WordState, len(s.Words))
		for i, w := range s.Words {
			active := t >= w.StartTime && t < w.EndTime
			out[i] = WordState{Text: w.Text, Visible: true, Opacity: 1, Scale: 1}
			if active {
				out[i].Highlight = true
				out[i].Scale = 1.15
				out[i].OffsetY = -4
			}
		}
		return out

	case CaptionWordByWord:
		var active *Word
		for i := range s.Words {
			if t >= s.Words[i].StartTime {
				active = &s.Words[i]
			}
		}
		if active == nil {
			return nil
		}
		return []WordState{{Text: active.Text, Visible: true, Opacity: 1, Scale: 1}}

	case CaptionKaraoke:
		out := make([]WordState, len(s.Words))
		for i, w := range s.Words {
			ws := WordState{Text: w.Text, Visible: true, Opacity: 1, Scale: 1}
			switch {
			case t >= w.EndTime:
				ws.Highlight = true
				ws.Progress = 1
			case t < w.StartTime:
				ws.Muted = true
			default:
				span := w.EndTime - w.StartTime
				progress := 0.0
				if span > 0 {
					progress = (t - w.StartTime) / span
				}
				ws.Progress = clamp01(progress)
			}
			out[i] = ws
		}
		return out

	case CaptionBounce:
		out := make([]WordState, 0, len(s.Words))
		for _, w := range s.Words {
			relative := t - w.StartTime
			if relative < 0 {
				continue
			}
			progress := clamp01(relative / 0.3)
			out = append(out, WordState{
				Text: w.Text, Visible: true,
				Scale:   easing.EaseOutBounce(progress),
				Opacity: clamp01(progress * 2),
			})
		}
		return out

	case CaptionTypewriter:
		var out []WordState
		for _, w := range s.Words {
			if t < w.StartTime {
				continue
			}
			relative := t - w.StartTime
			out = append(out, WordState{Text: w.Text, Visible: true, Scale: 1, Opacity: clamp01(relative / 0.1)})
		}
		return out

	default:
		return []WordState{{Text: s.Text, Visible: true, Scale: 1, Opacity: 1}}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
