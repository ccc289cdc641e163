package display

import (
	"strconv"
	"strings"
)

// formatCount renders n with thousands separators.
func formatCount(n int64) string {
	digits := strconv.FormatInt(n, 10)

	start := 0
	if strings.HasPrefix(digits, "-") {
		start = 1
	}
	if len(digits)-start <= 3 {
		return digits
	}

	var out strings.Builder
	for i, ch := range digits {
		if i > start && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(ch)
	}
	return out.String()
}

// truncateLeading shortens s to width by keeping the trailing portion, the
// most identifying part of a topic/channel name, behind an ellipsis marker.
func truncateLeading(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return ellipsis[:width]
	}
	return ellipsis + s[len(s)-(width-len(ellipsis)):]
}

const ellipsis = "..."

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
