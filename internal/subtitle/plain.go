package subtitle

import (
	"bufio"
	"strings"
)

// seconds allotted to each cue when the source has no timing information
const plainCueSeconds = 3

// ParsePlain treats each non-empty line as one cue with synthetic timestamps
// spaced plainCueSeconds apart.
func ParsePlain(src string) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\uFEFF"))
		if line == "" {
			continue
		}
		items = append(items, Item{
			Start:    float64(len(items)) * plainCueSeconds,
			Duration: plainCueSeconds,
			Text:     line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, malformed(FormatPlain, "read failed: %v", err)
	}
	return items, nil
}
