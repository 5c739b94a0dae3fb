package subtitle

import (
	"errors"
	"fmt"
)

// represents single subtitle cue
type Item struct {
	Start       float64 // seconds from stream start
	Duration    float64 // seconds; 0 when the source carries no end time
	Text        string
	Translation string
}

// End returns the end time in seconds, or Start when no duration is known.
func (it Item) End() float64 {
	return it.Start + it.Duration
}

// represents supported subtitle source formats
type Format string

const (
	FormatSRT   Format = "srt"
	FormatVTT   Format = "vtt"
	FormatJSON  Format = "json"
	FormatPlain Format = "txt"
)

// ErrMalformedInput marks a subtitle source that cannot be parsed at all.
// Block formats (SRT/VTT) skip bad blocks instead of returning this; JSON
// input fails wholesale.
var ErrMalformedInput = errors.New("malformed subtitle input")

func malformed(format Format, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedInput, format, fmt.Sprintf(msg, args...))
}

// At returns the last item whose start is at or before t, falling back to
// the first item when t precedes the whole track. Returns false for an
// empty track.
func At(items []Item, t float64) (Item, bool) {
	if len(items) == 0 {
		return Item{}, false
	}
	current := items[0]
	for _, it := range items {
		if it.Start > t {
			break
		}
		current = it
	}
	return current, true
}

// Window returns up to n consecutive items starting from the item covering t.
func Window(items []Item, t float64, n int) []Item {
	if len(items) == 0 || n <= 0 {
		return nil
	}
	start := 0
	for i, it := range items {
		if it.Start > t {
			break
		}
		start = i
	}
	end := start + n
	if end > len(items) {
		end = len(items)
	}
	out := make([]Item, end-start)
	copy(out, items[start:end])
	return out
}
