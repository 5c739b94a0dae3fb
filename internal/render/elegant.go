package render

import (
	"github.com/gogpu/gg"
)

// elegant card geometry and spacing
const (
	elegantPadding     = 56.0
	elegantFooterH     = 64.0
	elegantTextMargin  = 48.0
	elegantLineFactor  = 1.6 // line spacing as a multiple of font size
	elegantParaFactor  = 0.9 // extra gap between paragraphs
	elegantCornerR     = 16.0
	elegantQuoteSize   = 64.0
	elegantQuoteAlpha  = 0.12
	elegantPanelAlpha  = 0.72
	elegantHaloAlpha   = 0.18
	elegantImageCorner = 10.0
)

// elegantMode is the denser card treatment: gradient background, a radial
// accent halo behind the frame, a frosted panel with center-aligned wrapped
// paragraphs between decorative quote glyphs, and a left-title /
// right-timestamp footer over a thin rule.
type elegantMode struct{}

func (*elegantMode) Name() string { return ModeElegant }

func (*elegantMode) Render(ctx *Context) error {
	bounds := ctx.Image.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())

	fontSize := ctx.Config.fontSize()
	logicalW := imgW + 2*elegantPadding

	// wrap each cue as one centered paragraph
	panelInner := logicalW - 2*elegantPadding - 2*24
	// measuring needs the surface's fonts but not its backing store, so
	// wrapping can happen before Setup
	measure := ctx.Surface.Measurer(fontSize)
	var paragraphs [][]string
	totalLines := 0
	for _, it := range ctx.Items {
		for _, block := range cueLines(it.Text, it.Translation) {
			lines := WrapText(block, panelInner, measure)
			paragraphs = append(paragraphs, lines)
			totalLines += len(lines)
		}
	}

	lineSpacing := fontSize * elegantLineFactor
	paraSpacing := fontSize * elegantParaFactor
	textH := float64(totalLines) * lineSpacing
	if n := len(paragraphs); n > 1 {
		textH += float64(n-1) * paraSpacing
	}
	panelH := textH + 2*elegantTextMargin

	logicalH := elegantPadding + imgH + 32 + panelH + elegantFooterH + elegantPadding
	w, h := ctx.Surface.Setup(int(logicalW), int(logicalH))
	dc := ctx.Surface.DC()

	accent := SampleAccentColor(ctx.Image)
	drawElegantBackground(ctx.Surface, float64(w), float64(h), accent)

	// halo glow behind the frame
	haloCX := float64(w) / 2
	haloCY := elegantPadding + imgH/2
	haloR := imgW * 0.7
	halo := ctx.Surface.RadialGradient(haloCX, haloCY, 0, haloR)
	halo.AddColorStop(0, gg.RGBA{
		R: float64(accent.R) / 255, G: float64(accent.G) / 255,
		B: float64(accent.B) / 255, A: elegantHaloAlpha})
	halo.AddColorStop(1, gg.RGBA{
		R: float64(accent.R) / 255, G: float64(accent.G) / 255,
		B: float64(accent.B) / 255, A: 0})
	dc.SetFillBrush(halo)
	dc.DrawCircle(haloCX, haloCY, haloR)
	if err := dc.Fill(); err != nil {
		return err
	}

	if err := drawRoundedImage(ctx, elegantPadding, elegantPadding, imgW, imgH, elegantImageCorner); err != nil {
		return err
	}

	// frosted panel behind the text
	panelX := elegantPadding
	panelY := elegantPadding + imgH + 32
	panelW := float64(w) - 2*elegantPadding
	setColor(dc, RGB{255, 255, 255}, elegantPanelAlpha)
	dc.DrawRoundedRectangle(panelX, panelY, panelW, panelH, elegantCornerR)
	if err := dc.Fill(); err != nil {
		return err
	}

	// decorative quotation marks, oversized and faint
	setColor(dc, accent, elegantQuoteAlpha)
	ctx.Surface.DrawTextAnchored("“", panelX+28, panelY+elegantQuoteSize*0.55, 0.5, 0.5, elegantQuoteSize, true)
	ctx.Surface.DrawTextAnchored("”", panelX+panelW-28, panelY+panelH-elegantQuoteSize*0.25, 0.5, 0.5, elegantQuoteSize, true)

	textColor := RGB{51, 51, 51}
	y := panelY + elegantTextMargin + lineSpacing/2
	for _, lines := range paragraphs {
		for _, line := range lines {
			setColor(dc, textColor, 1)
			ctx.Surface.DrawTextAnchored(line, float64(w)/2, y, 0.5, 0.5, fontSize, false)
			y += lineSpacing
		}
		y += paraSpacing
	}

	drawElegantFooter(ctx, float64(w), float64(h), accent)
	return nil
}

func drawElegantBackground(s *Surface, w, h float64, accent RGB) {
	dc := s.DC()
	grad := s.LinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, gg.RGBA{
		R: mix(float64(accent.R), 250, 0.88) / 255,
		G: mix(float64(accent.G), 250, 0.88) / 255,
		B: mix(float64(accent.B), 250, 0.88) / 255, A: 1})
	grad.AddColorStop(1, gg.RGBA{R: 0.97, G: 0.97, B: 0.98, A: 1})
	dc.SetFillBrush(grad)
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()
}

// mix blends a toward b by t in [0,1].
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// footer: title on the left, timestamp on the right, thin rule above both
func drawElegantFooter(ctx *Context, w, h float64, accent RGB) {
	dc := ctx.Surface.DC()
	footerSize := 13.0
	ruleY := h - elegantPadding - elegantFooterH + 12
	measure := ctx.Surface.Measurer(footerSize)

	setColor(dc, accent, 0.35)
	dc.DrawRectangle(elegantPadding, ruleY, w-2*elegantPadding, 1)
	if err := dc.Fill(); err != nil {
		return
	}

	textY := ruleY + elegantFooterH/2
	if title := ctx.Config.VideoTitle; title != "" {
		title = TruncateToWidth(title, w*0.55, measure)
		setColor(dc, RGB{110, 110, 110}, 1)
		ctx.Surface.DrawTextAnchored(title, elegantPadding, textY, 0, 0.5, footerSize, false)
	}
	if timestamp := cardTimestamp(ctx); timestamp != "" {
		setColor(dc, RGB{110, 110, 110}, 1)
		ctx.Surface.DrawTextAnchored(timestamp, w-elegantPadding, textY, 1, 0.5, footerSize, false)
	}
}
