package render

import (
	"github.com/gogpu/gg"
)

// classic card geometry; the canvas is built bottom-up from the image size,
// the measured subtitle area, and these fixed parts
const (
	cardPadding      = 40.0
	cardFooterHeight = 56.0
	cardTextAreaPad  = 80.0
	cardCornerRadius = 12.0
	cardAccentWidth  = 4.0
)

// CardTextAreaHeight returns the subtitle-area height for a classic card
// with the given line count and font size.
func CardTextAreaHeight(lines int, fontSize float64) float64 {
	return float64(lines)*fontSize*lineHeightFactor + cardTextAreaPad
}

// cardMode lays the frame on a white card: soft drop shadow, rounded
// corners, an accent bar beside left-aligned cue text, and a centered
// title/timestamp footer.
type cardMode struct{}

func (*cardMode) Name() string { return ModeCard }

func (*cardMode) Render(ctx *Context) error {
	bounds := ctx.Image.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())

	lines := collectLines(ctx.Items)
	fontSize := ctx.Config.fontSize()
	textAreaH := CardTextAreaHeight(len(lines), fontSize)

	logicalW := imgW + 2*cardPadding
	logicalH := imgH + textAreaH + cardFooterHeight + 2*cardPadding

	w, h := ctx.Surface.Setup(int(logicalW), int(logicalH))
	dc := ctx.Surface.DC()

	setColor(dc, RGB{255, 255, 255}, 1)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return err
	}

	accent := SampleAccentColor(ctx.Image)

	drawImageShadow(dc, cardPadding, cardPadding, imgW, imgH, cardCornerRadius)
	if err := drawRoundedImage(ctx, cardPadding, cardPadding, imgW, imgH, cardCornerRadius); err != nil {
		return err
	}

	// accent bar beside the left-aligned cue block
	textTop := cardPadding + imgH + cardTextAreaPad/2
	blockH := float64(len(lines)) * fontSize * lineHeightFactor
	setColor(dc, accent, 1)
	dc.DrawRoundedRectangle(cardPadding, textTop, cardAccentWidth, blockH, cardAccentWidth/2)
	if err := dc.Fill(); err != nil {
		return err
	}

	measure := ctx.Surface.Measurer(fontSize)
	textX := cardPadding + cardAccentWidth + 16
	maxTextWidth := float64(w) - textX - cardPadding
	setColor(dc, RGB{34, 34, 34}, 1)
	for i, line := range lines {
		line = TruncateToWidth(line, maxTextWidth, measure)
		y := textTop + (float64(i)+0.5)*fontSize*lineHeightFactor
		ctx.Surface.DrawTextAnchored(line, textX, y, 0, 0.5, fontSize, false)
	}

	drawCardFooter(ctx, float64(w), float64(h), accent)
	return nil
}

// drawImageShadow fakes a soft drop shadow with layered translucent
// rounded rectangles growing outward.
func drawImageShadow(dc *gg.Context, x, y, w, h, radius float64) {
	for i := 4; i >= 1; i-- {
		spread := float64(i) * 2
		setColor(dc, RGB{0, 0, 0}, 0.04)
		dc.DrawRoundedRectangle(x-spread, y-spread+3, w+2*spread, h+2*spread, radius+spread)
		_ = dc.Fill()
	}
}

// drawRoundedImage blits the frame with its corners rounded in pixel space,
// since image blits bypass the vector clip stack.
func drawRoundedImage(ctx *Context, x, y, w, h, radius float64) error {
	srcRadius := radius
	if bw := float64(ctx.Image.Bounds().Dx()); w > 0 && bw != w {
		srcRadius = radius * bw / w
	}
	rounded := roundedCopy(ctx.Image, srcRadius)
	ctx.Surface.DC().DrawImageEx(gg.ImageBufFromImage(rounded), gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
	})
	return nil
}

// footer: "title │ M:SS", centered; either half may be absent
func drawCardFooter(ctx *Context, w, h float64, accent RGB) {
	footerSize := 13.0
	footerY := h - cardPadding - cardFooterHeight/2
	measure := ctx.Surface.Measurer(footerSize)

	title := ctx.Config.VideoTitle
	timestamp := cardTimestamp(ctx)

	if title == "" && timestamp == "" {
		return
	}

	const barGlyph = "│"
	switch {
	case title != "" && timestamp != "":
		maxTitle := w*0.6 - measure(" "+barGlyph+" "+timestamp)
		title = TruncateToWidth(title, maxTitle, measure)
		combined := title + "  " + barGlyph + "  " + timestamp
		setColor(ctx.Surface.DC(), RGB{120, 120, 120}, 1)
		ctx.Surface.DrawTextAnchored(combined, w/2, footerY, 0.5, 0.5, footerSize, false)
	case title != "":
		title = TruncateToWidth(title, w*0.6, measure)
		setColor(ctx.Surface.DC(), RGB{120, 120, 120}, 1)
		ctx.Surface.DrawTextAnchored(title, w/2, footerY, 0.5, 0.5, footerSize, false)
	default:
		setColor(ctx.Surface.DC(), RGB{120, 120, 120}, 1)
		ctx.Surface.DrawTextAnchored(timestamp, w/2, footerY, 0.5, 0.5, footerSize, false)
	}
}

// cardTimestamp resolves the footer timestamp from CardOptions, defaulting
// to the first cue's start time.
func cardTimestamp(ctx *Context) string {
	opts := ctx.Config.CardOptions
	if opts != nil && !opts.ShowTimestamp {
		return ""
	}
	at := -1.0
	if opts != nil && opts.Timestamp > 0 {
		at = opts.Timestamp
	}
	if at < 0 {
		if len(ctx.Items) == 0 {
			return ""
		}
		at = ctx.Items[0].Start
	}
	return FormatTimestamp(at)
}
