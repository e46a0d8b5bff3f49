// Package text implements styled-text layout, the per-character/word/line
// animation kernel driving staggered text effects, and the text render
// engine that turns a TextClip + time into a display list of draw ops.
package text

import "strings"

// Metrics is the host-supplied glyph measurement service (§6 TextMetrics).
type Metrics interface {
	Width(text, font string, size float64) float64
}

// Font describes the styling used to measure and draw text.
type Font struct {
	Family        string
	Size          float64
	Weight        string
	LetterSpacing float64
	LineHeight    float64 // multiplier of Size, e.g. 1.2
}

// Character is one glyph's measured position within the block.
type Character struct {
	Rune            rune
	GlobalIndex     int
	LineIndex       int
	CharIndexInLine int
	X, Y            float64
	Width, Height   float64
}

// Word aggregates the characters between whitespace runs.
type Word struct {
	Text      string
	CharStart int // inclusive index into Layout.Characters
	CharEnd   int // exclusive
}

// Line aggregates the characters on one visual line.
type Line struct {
	CharStart int
	CharEnd   int
	Y         float64
	Width     float64
}

// Layout is the full measured result of MeasureText.
type Layout struct {
	Characters              []Character
	Words                   []Word
	Lines                   []Line
	TotalWidth, TotalHeight float64
}

// MeasureText splits text on '\n' into lines, then on whitespace runs into
// words (whitespace itself is a separator, never emitted as its own word),
// measuring each glyph via the host metrics service and advancing by
// width+letterSpacing. Lines start at currentY += fontSize*lineHeight.
func MeasureText(m Metrics, text string, font Font) Layout {
	lineHeight := font.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}

	var out Layout
	lines := strings.Split(text, "\n")
	globalIdx := 0
	currentY := font.Size // baseline of the first line

	for lineIdx, lineText := range lines {
		lineStartChar := len(out.Characters)
		x := 0.0

		words := splitKeepingRuns(lineText)
		for _, w := range words {
			if strings.TrimSpace(w) == "" {
				// Whitespace run: advance X but emit no Word, still emit
				// characters so indices stay contiguous for glyph draws.
				for _, r := range w {
					width := m.Width(string(r), font.Family, font.Size)
					out.Characters = append(out.Characters, Character{
						Rune: r, GlobalIndex: globalIdx, LineIndex: lineIdx,
						CharIndexInLine: len(out.Characters) - lineStartChar,
						X: x, Y: currentY, Width: width, Height: font.Size,
					})
					x += width + font.LetterSpacing
					globalIdx++
				}
				continue
			}

			wordStart := len(out.Characters)
			for _, r := range w {
				width := m.Width(string(r), font.Family, font.Size)
				out.Characters = append(out.Characters, Character{
					Rune: r, GlobalIndex: globalIdx, LineIndex: lineIdx,
					CharIndexInLine: len(out.Characters) - lineStartChar,
					X: x, Y: currentY, Width: width, Height: font.Size,
				})
				x += width + font.LetterSpacing
				globalIdx++
			}
			out.Words = append(out.Words, Word{Text: w, CharStart: wordStart, CharEnd: len(out.Characters)})
		}

		out.Lines = append(out.Lines, Line{CharStart: lineStartChar, CharEnd: len(out.Characters), Y: currentY, Width: x})
		if x > out.TotalWidth {
			out.TotalWidth = x
		}
		currentY += font.Size * lineHeight
	}
	out.TotalHeight = currentY - font.Size*lineHeight + font.Size
	return out
}

// splitKeepingRuns splits on whitespace boundaries, keeping each whitespace
// run as its own token, so advancing X stays correct without emitting
// whitespace as a Word.
func splitKeepingRuns(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	var cur strings.Builder
	curIsSpace := isSpace(rune(s[0]))
	for _, r := range s {
		if isSpace(r) != curIsSpace {
			out = append(out, cur.String())
			cur.Reset()
			curIsSpace = isSpace(r)
		}
		cur.WriteRune(r)
	}
	out = append(out, cur.String())
	return out
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
