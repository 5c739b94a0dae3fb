package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/snapvo/snapvo/internal/subtitle"
)

func testFrame(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(60 + x%40),
				G: uint8(80 + y%30),
				B: 140,
				A: 255,
			})
		}
	}
	return img
}

func testItems() []subtitle.Item {
	return []subtitle.Item{
		{Start: 61, Duration: 3, Text: "First line of dialogue"},
		{Start: 65, Duration: 2, Text: "Second line"},
		{Start: 68, Duration: 2, Text: "Third line"},
	}
}

func TestEveryRegisteredModeRenders(t *testing.T) {
	img := testFrame(120, 68)
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			surface, err := NewSurface()
			if err != nil {
				t.Fatalf("NewSurface failed: %v", err)
			}
			cfg := DefaultConfig()
			cfg.DisplayMode = name
			cfg.VideoTitle = "Test Video"

			if err := Render(surface, img, testItems(), cfg); err != nil {
				t.Fatalf("mode %s failed: %v", name, err)
			}
			w, h := surface.LogicalSize()
			if w <= 0 || h <= 0 {
				t.Errorf("mode %s produced degenerate logical size %dx%d", name, w, h)
			}
			if surface.Image() == nil {
				t.Errorf("mode %s left no backing store", name)
			}
		})
	}
}

func TestUnknownModeFallsBackToOverlay(t *testing.T) {
	img := testFrame(100, 60)
	items := testItems()

	renderPNG := func(mode string) []byte {
		surface, err := NewSurface()
		if err != nil {
			t.Fatalf("NewSurface failed: %v", err)
		}
		cfg := DefaultConfig()
		cfg.DisplayMode = mode
		if err := Render(surface, img, items, cfg); err != nil {
			t.Fatalf("render with mode %q failed: %v", mode, err)
		}
		var buf bytes.Buffer
		if err := surface.EncodePNG(&buf); err != nil {
			t.Fatalf("EncodePNG failed: %v", err)
		}
		return buf.Bytes()
	}

	overlay := renderPNG(ModeOverlay)
	fallback := renderPNG("definitely-not-registered")
	if !bytes.Equal(overlay, fallback) {
		t.Error("unknown mode must render identically to overlay")
	}
}

func TestOverlayLogicalSizeIndependentOfPixelRatio(t *testing.T) {
	img := testFrame(800, 450)
	for _, ratio := range []float64{1, 2} {
		surface, err := NewSurface(WithPixelRatio(ratio))
		if err != nil {
			t.Fatalf("NewSurface failed: %v", err)
		}
		cfg := DefaultConfig()
		if err := Render(surface, img, testItems(), cfg); err != nil {
			t.Fatalf("render at ratio %v failed: %v", ratio, err)
		}

		w, h := surface.LogicalSize()
		if w != 800 || h != 450 {
			t.Errorf("ratio %v: logical size %dx%d, want 800x450", ratio, w, h)
		}
		bounds := surface.Image().Bounds()
		wantPhysical := image.Pt(int(800*ratio), int(450*ratio))
		if bounds.Dx() != wantPhysical.X || bounds.Dy() != wantPhysical.Y {
			t.Errorf("ratio %v: backing store %dx%d, want %v", ratio,
				bounds.Dx(), bounds.Dy(), wantPhysical)
		}
	}
}

func TestCardGeometry(t *testing.T) {
	// 2 cue lines at fontSize 16: text area 2*(2*16)+80 = 144,
	// total height = 450 + 144 + 56 + 2*40 = 730, width = 800 + 2*40 = 880
	if got := CardTextAreaHeight(2, 16); got != 144 {
		t.Fatalf("CardTextAreaHeight(2, 16) = %v, want 144", got)
	}

	surface, err := NewSurface()
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.DisplayMode = ModeCard
	cfg.SubtitleStyle.FontSize = 16
	cfg.VideoTitle = "Geometry"

	items := []subtitle.Item{
		{Start: 1, Text: "line one"},
		{Start: 2, Text: "line two"},
	}
	if err := Render(surface, testFrame(800, 450), items, cfg); err != nil {
		t.Fatalf("card render failed: %v", err)
	}

	w, h := surface.LogicalSize()
	if w != 880 || h != 730 {
		t.Errorf("card canvas %dx%d, want 880x730", w, h)
	}
}

func TestStitchGeometry(t *testing.T) {
	surface, err := NewSurface()
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.DisplayMode = ModeStitch
	cfg.StitchCropRatio = 0.2
	cfg.StitchSeparator = SeparatorBlack
	cfg.StitchSeparatorWidth = 2

	// 3 cues: full frame + 2 strips of 100*0.2=20 plus 2 separators of 2
	if err := Render(surface, testFrame(200, 100), testItems(), cfg); err != nil {
		t.Fatalf("stitch render failed: %v", err)
	}
	w, h := surface.LogicalSize()
	if w != 200 || h != 144 {
		t.Errorf("stitch canvas %dx%d, want 200x144", w, h)
	}
}

func TestStitchSeparatorNoneAddsNoGap(t *testing.T) {
	surface, err := NewSurface()
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.DisplayMode = ModeStitch
	cfg.StitchCropRatio = 0.2
	cfg.StitchSeparator = SeparatorNone
	cfg.StitchSeparatorWidth = 5

	if err := Render(surface, testFrame(200, 100), testItems(), cfg); err != nil {
		t.Fatalf("stitch render failed: %v", err)
	}
	if _, h := surface.LogicalSize(); h != 140 {
		t.Errorf("separator none must not reserve width, got height %d", h)
	}
}

func TestRegistryOverwrite(t *testing.T) {
	original, _ := Get(ModeOverlay)
	defer Register(original)

	double := &stubMode{name: ModeOverlay}
	Register(double)

	m, ok := Get(ModeOverlay)
	if !ok || m != Mode(double) {
		t.Error("re-registration must overwrite (last write wins)")
	}
	if !IsModeAvailable(ModeOverlay) {
		t.Error("IsModeAvailable disagrees with Get")
	}
}

type stubMode struct{ name string }

func (s *stubMode) Name() string              { return s.name }
func (s *stubMode) Render(ctx *Context) error { return nil }

func TestRenderNilInputs(t *testing.T) {
	surface, err := NewSurface()
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	if err := Render(nil, testFrame(10, 10), nil, DefaultConfig()); err == nil {
		t.Error("nil surface must be rejected")
	}
	if err := Render(surface, nil, nil, DefaultConfig()); err == nil {
		t.Error("nil image must be rejected")
	}
}
