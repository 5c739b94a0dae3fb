package subtitle

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON parses a JSON array of subtitle objects or strings. Object keys
// accept aliases: start|startTime, duration|dur, text|content,
// translation|trans. Unlike the block formats, a malformed document fails
// the whole parse.
func ParseJSON(src string) ([]Item, error) {
	if !gjson.Valid(src) {
		return nil, malformed(FormatJSON, "invalid JSON document")
	}

	root := gjson.Parse(src)
	if !root.IsArray() {
		return nil, malformed(FormatJSON, "expected a top-level array, got %s", root.Type)
	}

	var items []Item
	var badIndex int = -1

	root.ForEach(func(i, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			items = append(items, Item{
				Start: float64(len(items)) * plainCueSeconds,
				Text:  value.String(),
			})
		case value.IsObject():
			item := Item{
				Start:       firstNumber(value, "start", "startTime"),
				Duration:    firstNumber(value, "duration", "dur"),
				Text:        firstString(value, "text", "content"),
				Translation: firstString(value, "translation", "trans"),
			}
			if strings.TrimSpace(item.Text) == "" {
				badIndex = int(i.Int())
				return false
			}
			items = append(items, item)
		default:
			badIndex = int(i.Int())
			return false
		}
		return true
	})

	if badIndex >= 0 {
		return nil, malformed(FormatJSON, "element %d is not a subtitle object", badIndex)
	}
	return items, nil
}

func firstNumber(value gjson.Result, keys ...string) float64 {
	for _, key := range keys {
		if v := value.Get(key); v.Exists() {
			return v.Float()
		}
	}
	return 0
}

func firstString(value gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := value.Get(key); v.Exists() {
			return v.String()
		}
	}
	return ""
}
