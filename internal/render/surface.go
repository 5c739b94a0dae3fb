package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface is a caller-owned drawing target: a gg context plus the pixel
// ratio of the display it will be shown on. Modes size it with Setup and
// then draw in logical coordinates; the backing store is pixelRatio times
// larger so text stays crisp on high-density displays.
type Surface struct {
	pixelRatio float64

	dc       *gg.Context
	logicalW int
	logicalH int

	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
}

type faceKey struct {
	size float64
	bold bool
}

// SurfaceOption configures a Surface at construction.
type SurfaceOption func(*Surface)

// WithPixelRatio sets the backing-store scale factor. Values below 1 are
// treated as 1.
func WithPixelRatio(ratio float64) SurfaceOption {
	return func(s *Surface) {
		if ratio >= 1 {
			s.pixelRatio = ratio
		}
	}
}

// WithFontSources overrides the embedded Go fonts.
func WithFontSources(regular, bold *text.FontSource) SurfaceOption {
	return func(s *Surface) {
		if regular != nil {
			s.regular = regular
		}
		if bold != nil {
			s.bold = bold
		}
	}
}

// NewSurface creates an unsized surface with pixel ratio 1 and the embedded
// Go fonts. The surface has no backing store until a mode calls Setup.
func NewSurface(opts ...SurfaceOption) (*Surface, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	s := &Surface{
		pixelRatio: 1,
		regular:    regular,
		bold:       bold,
		faces:      make(map[faceKey]text.Face),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Setup sizes the backing store to logical dimensions times the pixel ratio
// and applies a uniform scale so all subsequent drawing uses logical
// coordinates. Returns the logical dimensions actually used (clamped to at
// least 1x1). Any previous backing store is discarded.
func (s *Surface) Setup(logicalW, logicalH int) (int, int) {
	if logicalW < 1 {
		logicalW = 1
	}
	if logicalH < 1 {
		logicalH = 1
	}
	s.logicalW = logicalW
	s.logicalH = logicalH

	physicalW := int(float64(logicalW) * s.pixelRatio)
	physicalH := int(float64(logicalH) * s.pixelRatio)

	if s.dc != nil {
		_ = s.dc.Close()
	}
	s.dc = gg.NewContext(physicalW, physicalH)
	s.dc.Scale(s.pixelRatio, s.pixelRatio)
	return logicalW, logicalH
}

// DC returns the 2D drawing handle. Nil before the first Setup.
func (s *Surface) DC() *gg.Context {
	return s.dc
}

// PixelRatio returns the backing-store scale factor.
func (s *Surface) PixelRatio() float64 {
	return s.pixelRatio
}

// LogicalSize returns the logical dimensions from the last Setup.
func (s *Surface) LogicalSize() (int, int) {
	return s.logicalW, s.logicalH
}

// Image returns the backing pixel store at physical resolution.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the rendered bitmap as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.dc == nil {
		return fmt.Errorf("surface has no backing store")
	}
	return s.dc.EncodePNG(w)
}

// Face returns a cached regular font face at the given size.
func (s *Surface) Face(size float64) text.Face {
	return s.face(size, false)
}

// BoldFace returns a cached bold font face at the given size.
func (s *Surface) BoldFace(size float64) text.Face {
	return s.face(size, true)
}

func (s *Surface) face(size float64, bold bool) text.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := s.faces[key]; ok {
		return f
	}
	source := s.regular
	if bold {
		source = s.bold
	}
	f := source.Face(size)
	s.faces[key] = f
	return f
}

// Measurer returns a measure function for the regular face at size, in
// logical units.
func (s *Surface) Measurer(size float64) MeasureFunc {
	face := s.Face(size)
	return func(t string) float64 {
		w, _ := text.Measure(t, face)
		return w
	}
}

// MeasureText returns the logical width and line height of t at size.
func (s *Surface) MeasureText(t string, size float64) (float64, float64) {
	return text.Measure(t, s.Face(size))
}

// LinearGradient builds a linear gradient brush between logical points.
// Brushes sample in device space, so endpoints are mapped through the
// current transform.
func (s *Surface) LinearGradient(x0, y0, x1, y1 float64) *gg.LinearGradientBrush {
	px0, py0 := s.dc.TransformPoint(x0, y0)
	px1, py1 := s.dc.TransformPoint(x1, y1)
	return gg.NewLinearGradientBrush(px0, py0, px1, py1)
}

// RadialGradient builds a radial gradient brush with logical center and
// radii, mapped to device space.
func (s *Surface) RadialGradient(cx, cy, r0, r1 float64) *gg.RadialGradientBrush {
	pcx, pcy := s.dc.TransformPoint(cx, cy)
	return gg.NewRadialGradientBrush(pcx, pcy, r0*s.pixelRatio, r1*s.pixelRatio)
}

// DrawTextAnchored draws t with its (ax, ay) anchor at logical (x, y).
// Text rasterization in gg bypasses the context transform, so the face is
// scaled by the pixel ratio and the position mapped to physical coordinates
// here; this is what keeps glyphs sharp on dense displays.
func (s *Surface) DrawTextAnchored(t string, x, y, ax, ay, size float64, bold bool) {
	face := s.face(size*s.pixelRatio, bold)
	s.dc.SetFont(face)
	px, py := s.dc.TransformPoint(x, y)
	s.dc.DrawStringAnchored(t, px, py, ax, ay)
}
