package subtitle

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ParseError is one per-block failure recorded during SRT parsing; parsing
// never throws — it always returns a (possibly empty) ParseResult alongside
// the collected errors.
type ParseError struct {
	Block   int
	Line    int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("block %d: %s", e.Block, e.Message)
}

// ParseResult is the outcome of parsing an SRT document.
type ParseResult struct {
	Subtitles []Subtitle
	Errors    []ParseError
	Success   bool
}

var timestampRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})$`)

func parseTimestamp(s string) (float64, error) {
	m := timestampRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])
	if minutes >= 60 {
		return 0, fmt.Errorf("minutes out of range in %q", s)
	}
	if seconds >= 60 {
		return 0, fmt.Errorf("seconds out of range in %q", s)
	}
	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000, nil
}

var blankLines = regexp.MustCompile(`\n\n+`)
var arrowSplit = regexp.MustCompile(`\s*-->\s*`)

// Parse splits an SRT document into blocks on blank lines, parses each
// block's index/timestamp-range/text, normalises CRLF to LF on read, and
// collects one ParseError per malformed block instead of aborting.
func Parse(srt string) ParseResult {
	normalized := strings.ReplaceAll(srt, "\r\n", "\n")
	blocks := blankLines.Split(strings.TrimSpace(normalized), -1)

	var result ParseResult
	result.Success = true

	for i, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			result.Errors = append(result.Errors, ParseError{Block: i + 1, Message: "block has fewer than 2 lines"})
			result.Success = false
			continue
		}

		timeLineIdx := 1
		// Some producers omit the numeric index; tolerate it by detecting
		// the arrow on line 0.
		if strings.Contains(lines[0], "-->") {
			timeLineIdx = 0
		}
		if timeLineIdx >= len(lines) {
			result.Errors = append(result.Errors, ParseError{Block: i + 1, Message: "missing timestamp line"})
			result.Success = false
			continue
		}

		parts := arrowSplit.Split(lines[timeLineIdx], 2)
		if len(parts) != 2 {
			result.Errors = append(result.Errors, ParseError{Block: i + 1, Line: timeLineIdx + 1, Message: "malformed timestamp range: " + lines[timeLineIdx]})
			result.Success = false
			continue
		}

		start, err := parseTimestamp(parts[0])
		if err != nil {
			result.Errors = append(result.Errors, ParseError{Block: i + 1, Line: timeLineIdx + 1, Message: err.Error()})
			result.Success = false
			continue
		}
		end, err := parseTimestamp(parts[1])
		if err != nil {
			result.Errors = append(result.Errors, ParseError{Block: i + 1, Line: timeLineIdx + 1, Message: err.Error()})
			result.Success = false
			continue
		}
		if end <= start {
			result.Errors = append(result.Errors, ParseError{Block: i + 1, Message: "End time must be greater than start time"})
			result.Success = false
			continue
		}

		text := strings.Join(lines[timeLineIdx+1:], "\n")
		result.Subtitles = append(result.Subtitles, Subtitle{
			ID:        fmt.Sprintf("srt-%d", i+1),
			Text:      text,
			StartTime: start,
			EndTime:   end,
		})
	}

	return result
}

func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(seconds*1000 + 0.5) // round to nearest ms
	hours := totalMillis / 3600000
	totalMillis %= 3600000
	minutes := totalMillis / 60000
	totalMillis %= 60000
	secs := totalMillis / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Emit renders subtitles sorted by startTime into SRT text with 1-based
// indices, always writing ',' as the ms separator.
func Emit(subs []Subtitle) string {
	sorted := clone(subs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })

	var b strings.Builder
	for i, s := range sorted {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, formatTimestamp(s.StartTime), formatTimestamp(s.EndTime), s.Text)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
