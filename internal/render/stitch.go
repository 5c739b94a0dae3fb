package render

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/snapvo/snapvo/internal/subtitle"
)

// stitchMode stacks the frame's subtitle strip per cue, long-screenshot
// style: the full frame (with the first cue burned in) on top, then the
// bottom crop of the same frame once per remaining cue, separated by rules
// in the configured style. One visual segment per cue.
type stitchMode struct{}

func (*stitchMode) Name() string { return ModeStitch }

func (*stitchMode) Render(ctx *Context) error {
	bounds := ctx.Image.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())

	items := ctx.Items
	if len(items) == 0 {
		items = []subtitle.Item{{}}
	}

	cropRatio := ctx.Config.StitchCropRatio
	if cropRatio <= 0 || cropRatio > 0.5 {
		cropRatio = DefaultConfig().StitchCropRatio
	}
	cropH := imgH * cropRatio
	if cropH < 1 {
		cropH = 1
	}

	sepW := ctx.Config.StitchSeparatorWidth
	sepStyle := ctx.Config.StitchSeparator
	if sepStyle == SeparatorNone || sepW < 0 {
		sepW = 0
	}

	extra := float64(len(items) - 1)
	logicalH := imgH + extra*(cropH+sepW)
	w, _ := ctx.Surface.Setup(int(imgW), int(logicalH))
	dc := ctx.Surface.DC()

	style := ctx.Config.SubtitleStyle
	style.Position = PositionBottom

	buf := gg.ImageBufFromImage(ctx.Image)

	// full frame with the first cue
	dc.DrawImageEx(buf, gg.DrawImageOptions{
		DstWidth:  imgW,
		DstHeight: imgH,
	})
	drawSubtitleLines(ctx.Surface, cueLines(items[0].Text, items[0].Translation),
		rect{0, 0, float64(w), imgH}, style, RGB{245, 245, 245})

	// source crop for the repeated strips, in buffer coordinates (the
	// image buffer is rebased at the origin regardless of bounds.Min)
	srcCropH := int(float64(bounds.Dy()) * cropRatio)
	if srcCropH < 1 {
		srcCropH = 1
	}
	srcRect := imageRectBottom(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), srcCropH)

	y := imgH
	for _, item := range items[1:] {
		if sepW > 0 {
			sep := RGB{255, 255, 255}
			if sepStyle == SeparatorBlack {
				sep = RGB{0, 0, 0}
			}
			setColor(dc, sep, 1)
			dc.DrawRectangle(0, y, float64(w), sepW)
			if err := dc.Fill(); err != nil {
				return err
			}
			y += sepW
		}

		src := srcRect
		dc.DrawImageEx(buf, gg.DrawImageOptions{
			Y:         y,
			DstWidth:  imgW,
			DstHeight: cropH,
			SrcRect:   &src,
		})
		drawSubtitleLines(ctx.Surface, cueLines(item.Text, item.Translation),
			rect{0, y, float64(w), cropH}, style, RGB{245, 245, 245})
		y += cropH
	}
	return nil
}
