package render

import (
	"strings"
)

// MeasureFunc reports the rendered pixel width of a string.
type MeasureFunc func(string) float64

// WrapText breaks text into lines no wider than maxWidth according to
// measure. Whitespace-delimited text wraps at word boundaries; text without
// any whitespace (CJK-style) wraps per rune. A word too wide for an empty
// line is itself broken per rune, so progress is always made. The result is
// never empty: empty input yields a single empty line.
func WrapText(text string, maxWidth float64, measure MeasureFunc) []string {
	if text == "" {
		return []string{""}
	}

	if strings.IndexFunc(text, isSpace) < 0 {
		return wrapRunes(text, maxWidth, measure)
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if measure(word) <= maxWidth {
			line = word
			continue
		}
		// single word wider than the line; fall back to rune packing
		broken := wrapRunes(word, maxWidth, measure)
		lines = append(lines, broken[:len(broken)-1]...)
		line = broken[len(broken)-1]
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

func wrapRunes(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	var line string
	for _, r := range text {
		candidate := line + string(r)
		if line != "" && measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = string(r)
			continue
		}
		line = candidate
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
