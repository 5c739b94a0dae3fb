package subtitle

import (
	"strings"
)

// Parse parses subtitle source text in the given format. FormatPlain is the
// fallback for unknown format values.
func Parse(src string, format Format) ([]Item, error) {
	switch format {
	case FormatSRT:
		return ParseSRT(src)
	case FormatVTT:
		return ParseVTT(src)
	case FormatJSON:
		return ParseJSON(src)
	default:
		return ParsePlain(src)
	}
}

// Detect sniffs the subtitle format from the source content: a WEBVTT header,
// a JSON array/object opener, an SRT-style arrow, then plain text.
func Detect(src string) Format {
	head := strings.TrimSpace(strings.TrimPrefix(src, "\uFEFF"))

	if strings.HasPrefix(head, "WEBVTT") {
		return FormatVTT
	}
	if strings.HasPrefix(head, "[") || strings.HasPrefix(head, "{") {
		return FormatJSON
	}
	if strings.Contains(src, "-->") {
		if vttTimestampRegex.MatchString(src) && !strings.Contains(src, ",") {
			return FormatVTT
		}
		return FormatSRT
	}
	return FormatPlain
}

// DetectByExtension maps a file extension (with or without the dot) to a
// format, defaulting to plain text.
func DetectByExtension(ext string) Format {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "srt":
		return FormatSRT
	case "vtt":
		return FormatVTT
	case "json":
		return FormatJSON
	default:
		return FormatPlain
	}
}
