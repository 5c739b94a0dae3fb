package subtitle

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var srtTimestampRegex = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2})(?:[,.](\d{1,3}))?\s*-->\s*(\d{2}):(\d{2}):(\d{2})(?:[,.](\d{1,3}))?`,
)

// ParseSRT parses SubRip source text. Malformed blocks are skipped rather
// than failing the whole input.
func ParseSRT(src string) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Item
	var textLines []string
	first := true

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

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if matches := srtTimestampRegex.FindStringSubmatch(line); matches != nil {
			start := srtSeconds(matches[1], matches[2], matches[3], matches[4])
			end := srtSeconds(matches[5], matches[6], matches[7], matches[8])
			current = &Item{Start: start, Duration: end - start}
			textLines = nil
			continue
		}

		if current == nil {
			// sequence counter before a timestamp line, or a stray line in
			// a malformed block
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				continue
			}
			continue
		}

		textLines = append(textLines, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, malformed(FormatSRT, "read failed: %v", err)
	}
	return items, nil
}

func srtSeconds(hours, minutes, seconds, millis string) float64 {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms := 0
	if millis != "" {
		// pad to exactly three digits so "5" means 500ms, not 5ms
		for len(millis) < 3 {
			millis += "0"
		}
		ms, _ = strconv.Atoi(millis)
	}
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}
