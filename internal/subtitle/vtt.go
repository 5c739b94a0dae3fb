package subtitle

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(?:(\d{1,2}):)?(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{1,2}):)?(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// ParseVTT parses WebVTT source text. Cue identifier lines and NOTE blocks
// are ignored; malformed cues are skipped.
func ParseVTT(src string) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Item
	var textLines []string
	first := true
	inNote := false

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			items = append(items, *current)
		}
		current = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			inNote = false
			flush()
			continue
		}
		if inNote {
			continue
		}
		if strings.HasPrefix(trimmed, "WEBVTT") || strings.HasPrefix(trimmed, "STYLE") ||
			strings.HasPrefix(trimmed, "REGION") {
			continue
		}
		if strings.HasPrefix(trimmed, "NOTE") {
			inNote = true
			continue
		}

		if matches := vttTimestampRegex.FindStringSubmatch(line); matches != nil {
			start := vttSeconds(matches[1], matches[2], matches[3], matches[4])
			end := vttSeconds(matches[5], matches[6], matches[7], matches[8])
			current = &Item{Start: start, Duration: end - start}
			textLines = nil
			continue
		}

		if current == nil {
			// cue identifier line, or text orphaned by a malformed timestamp
			continue
		}
		textLines = append(textLines, stripVTTTags(line))
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, malformed(FormatVTT, "read failed: %v", err)
	}
	return items, nil
}

func vttSeconds(hours, minutes, seconds, millis string) float64 {
	h := 0
	if hours != "" {
		h, _ = strconv.Atoi(hours)
	}
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}

var vttTagRegex = regexp.MustCompile(`<[^>]*>`)

func stripVTTTags(line string) string {
	return vttTagRegex.ReplaceAllString(line, "")
}
