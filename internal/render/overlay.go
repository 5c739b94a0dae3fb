package render

import (
	"image"

	"github.com/gogpu/gg"
)

// overlayMode burns the cue text straight onto the frame: the source image
// at natural size with the subtitle block anchored per the configured
// position. This is the baseline composition and the universal fallback.
type overlayMode struct{}

func (*overlayMode) Name() string { return ModeOverlay }

func (*overlayMode) Render(ctx *Context) error {
	bounds := ctx.Image.Bounds()
	w, h := ctx.Surface.Setup(bounds.Dx(), bounds.Dy())
	dc := ctx.Surface.DC()

	buf := gg.ImageBufFromImage(ctx.Image)
	dc.DrawImageEx(buf, gg.DrawImageOptions{
		DstWidth:  float64(w),
		DstHeight: float64(h),
	})

	lines := collectLines(ctx.Items)
	style := ctx.Config.SubtitleStyle

	textColor := RGB{245, 245, 245}
	if style.Background == BackgroundNone {
		// no pill behind the text; pick contrast against the anchor strip
		textColor = ContrastTextColor(anchorStripColor(ctx.Image, style.Position))
	}

	drawSubtitleLines(ctx.Surface, lines,
		rect{0, 0, float64(w), float64(h)}, style, textColor)
	return nil
}

// anchorStripColor samples the dominant color of the image strip the
// subtitle block sits on.
func anchorStripColor(img image.Image, position string) RGB {
	bounds := img.Bounds()
	stripH := bounds.Dy() / 4
	if stripH < 1 {
		stripH = 1
	}
	strip := image.Rect(bounds.Min.X, bounds.Max.Y-stripH, bounds.Max.X, bounds.Max.Y)
	if position == PositionTop {
		strip = image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+stripH)
	}
	return SampleDominantColor(img, strip)
}
