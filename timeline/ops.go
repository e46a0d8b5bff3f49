package timeline

import "videocore/corerr"

// AddTrack appends a new track, rejecting a duplicate ID.
func AddTrack(tl Timeline, track Track) (Timeline, error) {
	for _, t := range tl.Tracks {
		if t.ID == track.ID {
			return tl, corerr.New(corerr.SchemaInvalid, "duplicate track id "+track.ID)
		}
	}
	next := cloneTracks(tl.Tracks)
	next = append(next, track)
	return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
}

// RemoveTrack drops the track with the given ID.
func RemoveTrack(tl Timeline, trackID string) Timeline {
	var next []Track
	for _, t := range tl.Tracks {
		if t.ID != trackID {
			next = append(next, t)
		}
	}
	return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}
}

// ReorderTrack moves the track with the given ID to newIndex.
func ReorderTrack(tl Timeline, trackID string, newIndex int) Timeline {
	next := cloneTracks(tl.Tracks)
	idx := -1
	for i, t := range next {
		if t.ID == trackID {
			idx = i
			break
		}
	}
	if idx < 0 || newIndex < 0 || newIndex >= len(next) {
		return tl
	}
	moved := next[idx]
	next = append(next[:idx], next[idx+1:]...)
	out := make([]Track, 0, len(next)+1)
	out = append(out, next[:newIndex]...)
	out = append(out, moved)
	out = append(out, next[newIndex:]...)
	return Timeline{Tracks: out, Subtitles: tl.Subtitles, Markers: tl.Markers}
}

func withTrack(tl Timeline, trackID string, fn func(*Track) error) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for i := range next {
		if next[i].ID == trackID {
			if next[i].Locked {
				return tl, corerr.New(corerr.Unsupported, "track "+trackID+" is locked")
			}
			if err := fn(&next[i]); err != nil {
				return tl, err
			}
			return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
		}
	}
	return tl, corerr.New(corerr.SchemaInvalid, "no track with id "+trackID)
}

// SetTrackFlags overwrites a track's locked/hidden/muted/solo flags. Setting
// flags is permitted even on a locked track (locking only blocks clip
// mutations).
func SetTrackFlags(tl Timeline, trackID string, locked, hidden, muted, solo *bool) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for i := range next {
		if next[i].ID == trackID {
			if locked != nil {
				next[i].Locked = *locked
			}
			if hidden != nil {
				next[i].Hidden = *hidden
			}
			if muted != nil {
				next[i].Muted = *muted
			}
			if solo != nil {
				next[i].Solo = *solo
			}
			return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
		}
	}
	return tl, corerr.New(corerr.SchemaInvalid, "no track with id "+trackID)
}

// AddClip appends a clip to its TrackID, rejecting locked tracks and
// overlapping placements.
func AddClip(tl Timeline, c Clip) (Timeline, error) {
	if err := c.Validate(); err != nil {
		return tl, err
	}
	return withTrack(tl, c.TrackID, func(t *Track) error {
		if overlaps(t.Clips, c, "") {
			return corerr.New(corerr.InvalidRange, "clip overlaps an existing clip on track "+t.ID)
		}
		if !compatibleWithTrack(t.Type, c) {
			return corerr.New(corerr.SchemaInvalid, "clip payload incompatible with track type "+string(t.Type))
		}
		t.Clips = append(append([]Clip(nil), t.Clips...), c)
		return nil
	})
}

func overlaps(clips []Clip, candidate Clip, excludeID string) bool {
	cStart, cEnd := candidate.StartTime, candidate.StartTime+candidate.Duration
	for _, c := range clips {
		if c.ID == candidate.ID || c.ID == excludeID {
			continue
		}
		start, end := c.StartTime, c.StartTime+c.Duration
		if cStart < end && start < cEnd {
			return true
		}
	}
	return false
}

// RemoveClip deletes the clip with the given ID from its track.
func RemoveClip(tl Timeline, clipID string) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for i := range next {
		if next[i].Locked {
			continue
		}
		filtered := make([]Clip, 0, len(next[i].Clips))
		for _, c := range next[i].Clips {
			if c.ID != clipID {
				filtered = append(filtered, c)
			}
		}
		next[i].Clips = filtered
	}
	return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
}

// MoveClip relocates a clip's startTime, optionally to a new trackId when
// the destination track shares the clip's media type compatibility.
func MoveClip(tl Timeline, clipID string, newStart float64, newTrackID string) (Timeline, error) {
	next := cloneTracks(tl.Tracks)

	var found *Clip
	var srcTrackIdx int
	for ti := range next {
		for ci := range next[ti].Clips {
			if next[ti].Clips[ci].ID == clipID {
				c := next[ti].Clips[ci]
				found = &c
				srcTrackIdx = ti
			}
		}
	}
	if found == nil {
		return tl, corerr.New(corerr.SchemaInvalid, "no clip with id "+clipID)
	}
	if next[srcTrackIdx].Locked {
		return tl, corerr.New(corerr.Unsupported, "source track is locked")
	}

	destTrackIdx := srcTrackIdx
	if newTrackID != "" && newTrackID != next[srcTrackIdx].ID {
		destTrackIdx = -1
		for ti := range next {
			if next[ti].ID == newTrackID {
				destTrackIdx = ti
			}
		}
		if destTrackIdx < 0 {
			return tl, corerr.New(corerr.SchemaInvalid, "no track with id "+newTrackID)
		}
		if next[destTrackIdx].Locked {
			return tl, corerr.New(corerr.Unsupported, "destination track is locked")
		}
		if next[destTrackIdx].Type != next[srcTrackIdx].Type {
			return tl, corerr.New(corerr.SchemaInvalid, "moveClip cannot cross incompatible media types")
		}
	}

	moved := *found
	moved.StartTime = newStart

	if destTrackIdx != srcTrackIdx {
		filtered := make([]Clip, 0, len(next[srcTrackIdx].Clips))
		for _, c := range next[srcTrackIdx].Clips {
			if c.ID != clipID {
				filtered = append(filtered, c)
			}
		}
		next[srcTrackIdx].Clips = filtered
	}

	destClips := next[destTrackIdx].Clips
	if destTrackIdx == srcTrackIdx {
		for i, c := range destClips {
			if c.ID == clipID {
				destClips = append(append([]Clip(nil), destClips[:i]...), destClips[i+1:]...)
				break
			}
		}
	}
	if overlaps(destClips, moved, clipID) {
		return tl, corerr.New(corerr.InvalidRange, "move would overlap an existing clip")
	}
	next[destTrackIdx].Clips = append(append([]Clip(nil), destClips...), moved)

	return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
}

// TrimClip adjusts a clip's inPoint/outPoint, recomputing duration from the
// unchanged startTime and the new trim bounds.
func TrimClip(tl Timeline, clipID string, inPoint, outPoint float64) (Timeline, error) {
	return mutateClip(tl, clipID, func(c *Clip) error {
		if inPoint < 0 || inPoint > outPoint {
			return corerr.New(corerr.InvalidRange, "trimClip requires 0 <= inPoint <= outPoint")
		}
		c.InPoint = inPoint
		c.OutPoint = outPoint
		newDuration := outPoint - inPoint
		if newDuration <= 0 {
			return corerr.New(corerr.InvalidRange, "trimClip would leave a non-positive duration")
		}
		c.Duration = newDuration
		return nil
	})
}

// SplitClip cuts the clip at time t (relative to the timeline), yielding
// two clips whose durations sum to the original and which share the
// original's source-trim boundaries. Splitting at exactly the clip's
// start or end is an error.
func SplitClip(tl Timeline, clipID string, t float64) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for ti := range next {
		for ci, c := range next[ti].Clips {
			if c.ID != clipID {
				continue
			}
			if t <= c.StartTime || t >= c.StartTime+c.Duration {
				return tl, corerr.New(corerr.InvalidRange, "split time must fall strictly within the clip")
			}
			relative := t - c.StartTime

			first := c
			first.Duration = relative
			first.OutPoint = c.InPoint + relative

			second := c
			second.ID = c.ID + "-b"
			second.StartTime = t
			second.Duration = c.Duration - relative
			second.InPoint = c.InPoint + relative

			clips := make([]Clip, 0, len(next[ti].Clips)+1)
			clips = append(clips, next[ti].Clips[:ci]...)
			clips = append(clips, first, second)
			clips = append(clips, next[ti].Clips[ci+1:]...)
			next[ti].Clips = clips
			return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
		}
	}
	return tl, corerr.New(corerr.SchemaInvalid, "no clip with id "+clipID)
}

// RippleDeleteClip removes a clip and shifts every later clip on the same
// track left by the removed clip's duration.
func RippleDeleteClip(tl Timeline, clipID string) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for ti := range next {
		for ci, c := range next[ti].Clips {
			if c.ID != clipID {
				continue
			}
			removedEnd := c.StartTime + c.Duration
			clips := make([]Clip, 0, len(next[ti].Clips)-1)
			clips = append(clips, next[ti].Clips[:ci]...)
			for _, later := range next[ti].Clips[ci+1:] {
				if later.StartTime >= removedEnd {
					later.StartTime -= c.Duration
				}
				clips = append(clips, later)
			}
			next[ti].Clips = clips
			return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
		}
	}
	return tl, corerr.New(corerr.SchemaInvalid, "no clip with id "+clipID)
}

// SlipClip shifts inPoint/outPoint equally, leaving startTime and duration
// unchanged — it changes what plays, not when.
func SlipClip(tl Timeline, clipID string, delta float64) (Timeline, error) {
	return mutateClip(tl, clipID, func(c *Clip) error {
		newIn := c.InPoint + delta
		newOut := c.OutPoint + delta
		if newIn < 0 {
			return corerr.New(corerr.InvalidRange, "slip would move inPoint before source start")
		}
		c.InPoint = newIn
		c.OutPoint = newOut
		return nil
	})
}

// SlideClip shifts a clip's startTime, trimming the immediate neighbours on
// the same track so they remain contiguous with no overlap.
func SlideClip(tl Timeline, clipID string, delta float64) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for ti := range next {
		clips := next[ti].Clips
		for ci, c := range clips {
			if c.ID != clipID {
				continue
			}
			newStart := c.StartTime + delta
			if ci > 0 {
				prev := clips[ci-1]
				prevEnd := newStart
				if prevEnd < prev.StartTime {
					return tl, corerr.New(corerr.InvalidRange, "slide would invert the previous clip")
				}
				clips[ci-1].Duration = prevEnd - prev.StartTime
			}
			if ci < len(clips)-1 {
				following := clips[ci+1]
				if newStart+c.Duration > following.StartTime+following.Duration {
					return tl, corerr.New(corerr.InvalidRange, "slide would invert the following clip")
				}
				shrink := (newStart + c.Duration) - following.StartTime
				clips[ci+1].StartTime = newStart + c.Duration
				clips[ci+1].Duration = following.Duration - shrink
				clips[ci+1].InPoint += shrink
			}
			clips[ci].StartTime = newStart
			next[ti].Clips = clips
			return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
		}
	}
	return tl, corerr.New(corerr.SchemaInvalid, "no clip with id "+clipID)
}

// RollEdit moves the shared boundary between two adjacent clips on the
// same track by delta: the earlier clip's end and the later clip's start
// both move.
func RollEdit(tl Timeline, firstClipID, secondClipID string, delta float64) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for ti := range next {
		clips := next[ti].Clips
		var fi, si = -1, -1
		for i, c := range clips {
			if c.ID == firstClipID {
				fi = i
			}
			if c.ID == secondClipID {
				si = i
			}
		}
		if fi < 0 || si < 0 {
			continue
		}
		first, second := clips[fi], clips[si]
		newBoundary := first.StartTime + first.Duration + delta
		if newBoundary <= first.StartTime || newBoundary >= second.StartTime+second.Duration {
			return tl, corerr.New(corerr.InvalidRange, "roll edit would invert one of the clips")
		}
		clips[fi].Duration = newBoundary - first.StartTime
		clips[fi].OutPoint = first.InPoint + clips[fi].Duration
		shift := newBoundary - second.StartTime
		clips[si].StartTime = newBoundary
		clips[si].Duration = second.Duration - shift
		clips[si].InPoint = second.InPoint + shift
		next[ti].Clips = clips
		return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
	}
	return tl, corerr.New(corerr.SchemaInvalid, "clips not found on the same track")
}

// TrimToPlayhead trims a clip's out edge (or in edge, if playhead falls
// before its midpoint) to the given playhead time.
func TrimToPlayhead(tl Timeline, clipID string, playhead float64) (Timeline, error) {
	return mutateClip(tl, clipID, func(c *Clip) error {
		if playhead <= c.StartTime || playhead >= c.StartTime+c.Duration {
			return corerr.New(corerr.InvalidRange, "playhead must fall within the clip")
		}
		mid := c.StartTime + c.Duration/2
		if playhead < mid {
			trimmed := playhead - c.StartTime
			c.InPoint += trimmed
			c.StartTime = playhead
			c.Duration -= trimmed
		} else {
			c.Duration = playhead - c.StartTime
			c.OutPoint = c.InPoint + c.Duration
		}
		return nil
	})
}

func mutateClip(tl Timeline, clipID string, fn func(*Clip) error) (Timeline, error) {
	next := cloneTracks(tl.Tracks)
	for ti := range next {
		if next[ti].Locked {
			continue
		}
		for ci := range next[ti].Clips {
			if next[ti].Clips[ci].ID == clipID {
				if err := fn(&next[ti].Clips[ci]); err != nil {
					return tl, err
				}
				return Timeline{Tracks: next, Subtitles: tl.Subtitles, Markers: tl.Markers}, nil
			}
		}
	}
	return tl, corerr.New(corerr.SchemaInvalid, "no clip with id "+clipID)
}

func cloneTracks(tracks []Track) []Track {
	out := make([]Track, len(tracks))
	for i, t := range tracks {
		out[i] = t
		out[i].Clips = append([]Clip(nil), t.Clips...)
	}
	return out
}
