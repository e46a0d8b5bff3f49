// Package subtitle implements the SRT parser/emitter and the pure subtitle
// mutation operations (add/update/remove/split/merge/shift/style-preset).
package subtitle

import (
	"videocore/corerr"
)

// Word is one word-timing entry used by word-synchronized caption styles.
type Word struct {
	Text      string
	StartTime float64
	EndTime   float64
}

// Style bundles the visual styling applied to a subtitle's text.
type Style struct {
	FontFamily      string
	FontSize        float64
	Color           string
	BackgroundColor string
	Position        string // "bottom","top","center", …
}

// Subtitle matches §3's Subtitle data model.
type Subtitle struct {
	ID              string
	Text            string
	StartTime       float64
	EndTime         float64
	Style           Style
	Words           []Word
	AnimationStyle  string
}

// Validate enforces endTime > startTime >= 0.
func (s Subtitle) Validate() error {
	if s.StartTime < 0 {
		return corerr.New(corerr.InvalidTime, "subtitle startTime must be >= 0")
	}
	if s.EndTime <= s.StartTime {
		return corerr.New(corerr.InvalidTime, "End time must be greater than start time")
	}
	return nil
}

// Timeline is the subset of subtitle state these operations read/write.
// Every operation is pure: it returns a new slice (or the original on
// error) and never mutates the caller's slice in place.
type Timeline struct {
	Subtitles []Subtitle
}

// OpResult is the {timeline,...} / {error} contract every mutation returns.
type OpResult struct {
	Timeline Timeline
	Error    error
}

func clone(subs []Subtitle) []Subtitle {
	out := make([]Subtitle, len(subs))
	copy(out, subs)
	return out
}

// Add appends a new subtitle after validating it.
func Add(tl Timeline, s Subtitle) OpResult {
	if err := s.Validate(); err != nil {
		return OpResult{Timeline: tl, Error: err}
	}
	next := append(clone(tl.Subtitles), s)
	return OpResult{Timeline: Timeline{Subtitles: next}}
}

// Update replaces the subtitle with the given ID via fn's mutation,
// rejecting the result if it fails Validate.
func Update(tl Timeline, id string, fn func(*Subtitle)) OpResult {
	next := clone(tl.Subtitles)
	found := false
	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
			if err := next[i].Validate(); err != nil {
				return OpResult{Timeline: tl, Error: err}
			}
			found = true
		}
	}
	if !found {
		return OpResult{Timeline: tl, Error: corerr.New(corerr.SchemaInvalid, "no subtitle with id "+id)}
	}
	return OpResult{Timeline: Timeline{Subtitles: next}}
}

// Remove deletes the subtitle with the given ID.
func Remove(tl Timeline, id string) OpResult {
	var next []Subtitle
	for _, s := range tl.Subtitles {
		if s.ID != id {
			next = append(next, s)
		}
	}
	return OpResult{Timeline: Timeline{Subtitles: next}}
}
