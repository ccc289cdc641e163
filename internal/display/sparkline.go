package display

import "strings"

// sparklineGlyphs orders glyph intensities from empty to full block.
var sparklineGlyphs = []rune(" ▂▃▄▅▆▇█")

// Sparkline renders the history window as one glyph per sample, scaled
// linearly against the window maximum. An all-zero window scales against 1
// and renders the lowest glyph throughout.
func Sparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}

	var max int64
	for _, value := range values {
		if value > max {
			max = value
		}
	}
	if max == 0 {
		max = 1
	}

	var out strings.Builder
	for _, value := range values {
		index := int(value * int64(len(sparklineGlyphs)-1) / max)
		if index >= len(sparklineGlyphs) {
			index = len(sparklineGlyphs) - 1
		}
		out.WriteRune(sparklineGlyphs[index])
	}

	return out.String()
}
