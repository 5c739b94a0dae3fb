package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/snapvo/snapvo/internal/subtitle"
)

// logical line height as a multiple of the font size
const lineHeightFactor = 2.0

// horizontal breathing room inside a subtitle block
const subtitlePadX = 16.0

const ellipsis = "…"

// FormatTimestamp renders seconds as M:SS with unpadded minutes and
// two-digit seconds. Fractional seconds are truncated.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// TruncateToWidth shortens t until it fits maxWidth with an ellipsis suffix,
// dropping one trailing rune at a time. Text that already fits is returned
// unchanged.
func TruncateToWidth(t string, maxWidth float64, measure MeasureFunc) string {
	if measure(t) <= maxWidth {
		return t
	}
	runes := []rune(t)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if measure(string(runes)+ellipsis) <= maxWidth {
			break
		}
	}
	return string(runes) + ellipsis
}

func setColor(dc *gg.Context, c RGB, alpha float64) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
}

// rect is a logical-coordinate rectangle for block placement.
type rect struct {
	x, y, w, h float64
}

// drawSubtitleLines places cue lines inside target, anchored to its top or
// bottom edge per style.Position, center-aligned, each line truncated with
// an ellipsis when wider than the block. Used by the overlay and separated
// modes; card modes do their own placement.
func drawSubtitleLines(s *Surface, lines []string, target rect, style SubtitleStyle, textColor RGB) {
	if len(lines) == 0 {
		return
	}
	fontSize := style.FontSize
	if fontSize <= 0 {
		fontSize = DefaultConfig().SubtitleStyle.FontSize
	}
	measure := s.Measurer(fontSize)
	lineHeight := fontSize * lineHeightFactor
	blockHeight := float64(len(lines)) * lineHeight

	var top float64
	switch style.Position {
	case PositionTop:
		top = target.y + fontSize/2
	case PositionCenter:
		top = target.y + (target.h-blockHeight)/2
	default:
		top = target.y + target.h - blockHeight - fontSize/2
	}

	dc := s.DC()
	maxTextWidth := target.w - 2*subtitlePadX

	for i, line := range lines {
		line = TruncateToWidth(line, maxTextWidth, measure)
		lineWidth := measure(line)
		centerX := target.x + target.w/2
		centerY := top + float64(i)*lineHeight + lineHeight/2

		switch style.Background {
		case BackgroundNone:
		case BackgroundSolid:
			setColor(dc, RGB{0, 0, 0}, 1)
			dc.DrawRoundedRectangle(centerX-lineWidth/2-subtitlePadX/2,
				centerY-lineHeight/2+2, lineWidth+subtitlePadX, lineHeight-4, 4)
			_ = dc.Fill()
		default: // translucent pill
			setColor(dc, RGB{0, 0, 0}, 0.55)
			dc.DrawRoundedRectangle(centerX-lineWidth/2-subtitlePadX/2,
				centerY-lineHeight/2+2, lineWidth+subtitlePadX, lineHeight-4, 4)
			_ = dc.Fill()
		}

		setColor(dc, textColor, 1)
		s.DrawTextAnchored(line, centerX, centerY, 0.5, 0.5, fontSize, false)
	}
}

// collectLines flattens the chosen cues into drawable lines, in order.
func collectLines(items []subtitle.Item) []string {
	var lines []string
	for _, it := range items {
		lines = append(lines, cueLines(it.Text, it.Translation)...)
	}
	return lines
}

// cueLines returns the drawable lines for an item: the text split on
// embedded newlines, plus the translation when present.
func cueLines(text, translation string) []string {
	var lines []string
	for _, l := range splitLines(text) {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if translation != "" {
		lines = append(lines, translation)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
