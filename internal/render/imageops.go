package render

import (
	"image"
	"image/color"
	"math"
)

// Image blitting in gg writes straight to the pixmap, bypassing the vector
// clip stack and non-axis-aligned transforms. The helpers here prepare
// source pixels so plain blits produce the mirrored and rounded shapes the
// modes need.

// mirroredBottomStrip returns the bottom stripH rows of img flipped
// vertically, so the row touching the image's bottom edge comes first.
func mirroredBottomStrip(img image.Image, stripH int) *image.NRGBA {
	bounds := img.Bounds()
	if stripH > bounds.Dy() {
		stripH = bounds.Dy()
	}
	if stripH < 1 {
		stripH = 1
	}

	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), stripH))
	for y := 0; y < stripH; y++ {
		srcY := bounds.Max.Y - 1 - y
		for x := 0; x < bounds.Dx(); x++ {
			out.Set(x, y, img.At(bounds.Min.X+x, srcY))
		}
	}
	return out
}

// roundedCopy returns img with its corners faded to transparent outside a
// rounded rectangle of the given radius, with one pixel of anti-aliasing.
func roundedCopy(img image.Image, radius float64) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	maxR := float64(w) / 2
	if float64(h)/2 < maxR {
		maxR = float64(h) / 2
	}
	if radius > maxR {
		radius = maxR
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			coverage := cornerCoverage(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), radius)
			if coverage < 1 {
				c.A = uint8(float64(c.A) * coverage)
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// cornerCoverage returns how much of the pixel at (px, py) lies inside the
// rounded rectangle [0,w]x[0,h] with the given corner radius, in [0,1].
func cornerCoverage(px, py, w, h, radius float64) float64 {
	cx := px
	if px > w-radius {
		cx = w - radius
	} else if px >= radius {
		return 1
	} else {
		cx = radius
	}
	cy := py
	if py > h-radius {
		cy = h - radius
	} else if py >= radius {
		return 1
	} else {
		cy = radius
	}

	d := math.Hypot(px-cx, py-cy)
	cov := radius + 0.5 - d
	if cov < 0 {
		return 0
	}
	if cov > 1 {
		return 1
	}
	return cov
}
