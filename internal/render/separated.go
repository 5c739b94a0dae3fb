package render

import (
	"github.com/gogpu/gg"
)

// vertical padding added to the separated subtitle panel
const separatedPanelPad = 64.0

// separatedMode draws the frame untouched with a dedicated subtitle panel
// below it. The panel opens with a vertically mirrored strip of the frame's
// bottom edge fading into the panel's dominant background color, so the two
// halves read as one continuous composition.
type separatedMode struct{}

func (*separatedMode) Name() string { return ModeSeparated }

func (*separatedMode) Render(ctx *Context) error {
	bounds := ctx.Image.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())

	lines := collectLines(ctx.Items)
	fontSize := ctx.Config.fontSize()
	panelH := float64(len(lines))*fontSize*lineHeightFactor + separatedPanelPad

	w, h := ctx.Surface.Setup(bounds.Dx(), bounds.Dy()+int(panelH))
	dc := ctx.Surface.DC()

	buf := gg.ImageBufFromImage(ctx.Image)
	dc.DrawImageEx(buf, gg.DrawImageOptions{
		DstWidth:  imgW,
		DstHeight: imgH,
	})

	// panel background from the frame's bottom quarter
	sampleH := bounds.Dy() / 4
	if sampleH < 1 {
		sampleH = 1
	}
	bg := SampleDominantColor(ctx.Image, imageRectBottom(bounds, sampleH))

	setColor(dc, bg, 1)
	dc.DrawRectangle(0, imgH, float64(w), panelH)
	if err := dc.Fill(); err != nil {
		return err
	}

	// mirror the bottom strip downward into the panel
	mirrorH := panelH
	if max := imgH / 2; mirrorH > max {
		mirrorH = max
	}
	if mirrorH >= 1 {
		strip := mirroredBottomStrip(ctx.Image, int(mirrorH))
		dc.DrawImageEx(gg.ImageBufFromImage(strip), gg.DrawImageOptions{
			Y:         imgH,
			DstWidth:  imgW,
			DstHeight: mirrorH,
		})

		// fade the mirrored strip into the solid panel color
		fade := ctx.Surface.LinearGradient(0, imgH, 0, imgH+mirrorH)
		fade.AddColorStop(0, gg.RGBA{
			R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255, A: 0.25})
		fade.AddColorStop(1, gg.RGBA{
			R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255, A: 1})
		dc.SetFillBrush(fade)
		dc.DrawRectangle(0, imgH, float64(w), mirrorH)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	style := ctx.Config.SubtitleStyle
	style.Background = BackgroundNone
	style.Position = PositionCenter
	drawSubtitleLines(ctx.Surface, lines,
		rect{0, imgH, float64(w), float64(h) - imgH}, style, ContrastTextColor(bg))
	return nil
}
