package subtitle

import (
	"sort"
	"strings"

	"videocore/corerr"
)

// Split cuts the subtitle with the given ID at splitTime, yielding two
// subtitles whose spans sum to the original. splitTime must fall strictly
// within the subtitle's span; cutting at exactly startTime or endTime is
// treated as an error (§9 Open Question i resolves the ambiguity this way).
func Split(tl Timeline, id string, splitTime float64) OpResult {
	next := clone(tl.Subtitles)
	for i, s := range next {
		if s.ID != id {
			continue
		}
		if splitTime <= s.StartTime || splitTime >= s.EndTime {
			return OpResult{Timeline: tl, Error: corerr.New(corerr.InvalidRange, "Split time must be within subtitle duration")}
		}
		first := s
		first.EndTime = splitTime
		second := s
		second.ID = s.ID + "-b"
		second.StartTime = splitTime

		first.Words, second.Words = splitWords(s.Words, splitTime)

		out := make([]Subtitle, 0, len(next)+1)
		out = append(out, next[:i]...)
		out = append(out, first, second)
		out = append(out, next[i+1:]...)
		return OpResult{Timeline: Timeline{Subtitles: out}}
	}
	return OpResult{Timeline: tl, Error: corerr.New(corerr.SchemaInvalid, "no subtitle with id "+id)}
}

func splitWords(words []Word, splitTime float64) (before, after []Word) {
	for _, w := range words {
		if w.EndTime <= splitTime {
			before = append(before, w)
		} else {
			after = append(after, w)
		}
	}
	return
}

// MergeAdjacent merges any two subtitles whose gap is <= threshold, joining
// text with "\n" and concatenating both words[] arrays (§9 Open Question ii
// resolves the ambiguity by preserving and concatenating words rather than
// re-merging them into one timing).
func MergeAdjacent(tl Timeline, threshold float64) OpResult {
	if threshold <= 0 {
		threshold = 0.1
	}
	subs := clone(tl.Subtitles)
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].StartTime < subs[j].StartTime })

	var out []Subtitle
	for _, s := range subs {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if s.StartTime-last.EndTime <= threshold {
				last.Text = last.Text + "\n" + s.Text
				last.EndTime = s.EndTime
				last.Words = append(last.Words, s.Words...)
				continue
			}
		}
		out = append(out, s)
	}
	return OpResult{Timeline: Timeline{Subtitles: out}}
}

// ShiftAll adds offset to every subtitle's start/end and word timings,
// clamping the earliest start to >= 0 (shifting every subtitle by the same
// correction so spans are preserved).
func ShiftAll(tl Timeline, offset float64) OpResult {
	subs := clone(tl.Subtitles)

	minStart := 0.0
	first := true
	for _, s := range subs {
		shifted := s.StartTime + offset
		if first || shifted < minStart {
			minStart = shifted
			first = false
		}
	}
	correction := 0.0
	if minStart < 0 {
		correction = -minStart
	}

	for i := range subs {
		subs[i].StartTime += offset + correction
		subs[i].EndTime += offset + correction
		subs[i].Words = append([]Word(nil), subs[i].Words...)
		for w := range subs[i].Words {
			subs[i].Words[w].StartTime += offset + correction
			subs[i].Words[w].EndTime += offset + correction
		}
	}
	return OpResult{Timeline: Timeline{Subtitles: subs}}
}

// StylePreset is the closed set of named caption style presets.
type StylePreset string

const (
	StyleMinimal    StylePreset = "minimal"
	StyleBoldCenter StylePreset = "bold-center"
	StyleNewsTicker StylePreset = "news-ticker"
	StyleKaraokeBar StylePreset = "karaoke-bar"
)

var stylePresets = map[StylePreset]Style{
	StyleMinimal:    {FontFamily: "Helvetica", FontSize: 28, Color: "#ffffff", Position: "bottom"},
	StyleBoldCenter: {FontFamily: "Arial Black", FontSize: 36, Color: "#ffffff", BackgroundColor: "#000000", Position: "center"},
	StyleNewsTicker: {FontFamily: "Georgia", FontSize: 24, Color: "#ffffff", BackgroundColor: "#c00000", Position: "bottom"},
	StyleKaraokeBar: {FontFamily: "Verdana", FontSize: 32, Color: "#ffff00", BackgroundColor: "#00000099", Position: "bottom"},
}

// ApplyStylePreset overwrites the subtitle's Style with a named preset.
func ApplyStylePreset(tl Timeline, id string, preset StylePreset) OpResult {
	style, ok := stylePresets[preset]
	if !ok {
		return OpResult{Timeline: tl, Error: corerr.Newf(corerr.Unsupported, "unknown style preset %q", preset)}
	}
	return Update(tl, id, func(s *Subtitle) { s.Style = style })
}

// joinNonEmpty joins the parts that are not blank with "\n"; nothing in
// this package calls it.
func joinNonEmpty(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
