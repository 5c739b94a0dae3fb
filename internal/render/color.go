package render

import (
	"image"
)

// RGB is an 8-bit-per-channel color produced by pixel sampling.
type RGB struct {
	R, G, B uint8
}

// quantization step for dominant-color voting; 8 levels per channel
const bucketStep = 32

// brightness bounds for accent sampling; pixels outside are ignored
const (
	accentMinBrightness = 30
	accentMaxBrightness = 225
)

// neutralGray is returned for degenerate sample regions.
var neutralGray = RGB{128, 128, 128}

// accentFallback is used when edge sampling filters out every pixel.
var accentFallback = RGB{102, 126, 234}

type colorBucket struct {
	sumR, sumG, sumB uint64
	count            uint64
}

func bucketKey(r, g, b uint8) uint32 {
	qr := uint32(r) / bucketStep * bucketStep
	qg := uint32(g) / bucketStep * bucketStep
	qb := uint32(b) / bucketStep * bucketStep
	return qr<<16 | qg<<8 | qb
}

// SampleDominantColor finds the most frequent quantized color in a region of
// img and returns the true (non-quantized) average of that bucket's pixels.
// Each channel is bucketed at step 32, so anti-aliasing noise around one hue
// still votes for the same bucket. A degenerate region yields neutral gray.
func SampleDominantColor(img image.Image, region image.Rectangle) RGB {
	region = region.Intersect(img.Bounds())
	if region.Dx() <= 0 || region.Dy() <= 0 {
		return neutralGray
	}

	buckets := make(map[uint32]*colorBucket)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r, g, b := uint8(r16>>8), uint8(g16>>8), uint8(b16>>8)

			key := bucketKey(r, g, b)
			bucket := buckets[key]
			if bucket == nil {
				bucket = &colorBucket{}
				buckets[key] = bucket
			}
			bucket.sumR += uint64(r)
			bucket.sumG += uint64(g)
			bucket.sumB += uint64(b)
			bucket.count++
		}
	}

	return dominantOf(buckets, neutralGray)
}

// SampleAccentColor samples a thin strip along the left edge of img, skipping
// near-black and near-white pixels so the accent stays chromatic. Falls back
// to an indigo default when every pixel is filtered out.
func SampleAccentColor(img image.Image) RGB {
	bounds := img.Bounds()
	stripWidth := bounds.Dx() / 20
	if stripWidth < 1 {
		stripWidth = 1
	}
	strip := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+stripWidth, bounds.Max.Y)

	buckets := make(map[uint32]*colorBucket)
	for y := strip.Min.Y; y < strip.Max.Y; y++ {
		for x := strip.Min.X; x < strip.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r, g, b := uint8(r16>>8), uint8(g16>>8), uint8(b16>>8)

			brightness := (int(r) + int(g) + int(b)) / 3
			if brightness < accentMinBrightness || brightness > accentMaxBrightness {
				continue
			}

			key := bucketKey(r, g, b)
			bucket := buckets[key]
			if bucket == nil {
				bucket = &colorBucket{}
				buckets[key] = bucket
			}
			bucket.sumR += uint64(r)
			bucket.sumG += uint64(g)
			bucket.sumB += uint64(b)
			bucket.count++
		}
	}

	return dominantOf(buckets, accentFallback)
}

func dominantOf(buckets map[uint32]*colorBucket, fallback RGB) RGB {
	var best *colorBucket
	var bestKey uint32
	for key, bucket := range buckets {
		if best == nil || bucket.count > best.count ||
			(bucket.count == best.count && key < bestKey) {
			best = bucket
			bestKey = key
		}
	}
	if best == nil || best.count == 0 {
		return fallback
	}
	return RGB{
		R: uint8(best.sumR / best.count),
		G: uint8(best.sumG / best.count),
		B: uint8(best.sumB / best.count),
	}
}

// ContrastTextColor picks a legible text color for the given background using
// YIQ luminance: near-black over light backgrounds, near-white over dark.
func ContrastTextColor(bg RGB) RGB {
	luminance := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luminance > 128 {
		return RGB{17, 17, 17}
	}
	return RGB{245, 245, 245}
}

// Luminance returns the YIQ-weighted brightness of c in [0,255].
func Luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// imageRectBottom returns the strip of height h along the bottom of bounds.
func imageRectBottom(bounds image.Rectangle, h int) image.Rectangle {
	return image.Rect(bounds.Min.X, bounds.Max.Y-h, bounds.Max.X, bounds.Max.Y)
}
