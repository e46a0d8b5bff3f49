package hostsvc

// ApproximateMetrics implements text.Metrics with a simple average-advance
// heuristic (0.6em per glyph, a handful of narrower/wider runes adjusted).
// It's a demo implementation, not production text layout; see DESIGN.md.
type ApproximateMetrics struct{}

var narrowRunes = map[rune]float64{'i': 0.28, 'l': 0.28, 'j': 0.28, '.': 0.28, ',': 0.28, ' ': 0.3, '\'': 0.2}
var wideRunes = map[rune]float64{'m': 0.9, 'w': 0.85, 'M': 0.95, 'W': 0.95}

// Width estimates the rendered width of text at the given size by summing
// a per-rune advance.
func (ApproximateMetrics) Width(text, font string, size float64) float64 {
	var total float64
	for _, r := range text {
		factor := 0.6
		if f, ok := narrowRunes[r]; ok {
			factor = f
		} else if f, ok := wideRunes[r]; ok {
			factor = f
		}
		total += factor * size
	}
	return total
}
