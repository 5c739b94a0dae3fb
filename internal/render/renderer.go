package render

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/snapvo/snapvo/internal/subtitle"
)

// Renderer dispatches render calls to the configured display mode. The held
// configuration is its only state; rendering itself is synchronous and
// mutates nothing but the supplied surface. Callers serialize access.
type Renderer struct {
	config Config
	log    *zap.SugaredLogger
}

// New creates a renderer holding a copy of cfg. A nil logger is replaced
// with a nop logger.
func New(cfg Config, log *zap.SugaredLogger) *Renderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Renderer{config: cfg.clone(), log: log}
}

// Render composes image and items onto surface using the configured display
// mode. An unknown mode name is not an error: it falls back to overlay with
// a logged warning. The surface's backing store is replaced by the call;
// extract the bitmap from it afterwards.
func (r *Renderer) Render(surface *Surface, img image.Image, items []subtitle.Item) error {
	return r.renderWith(surface, img, items, r.config)
}

// RenderWith is Render with a per-call config override; the held
// configuration is left untouched.
func (r *Renderer) RenderWith(surface *Surface, img image.Image, items []subtitle.Item, cfg Config) error {
	return r.renderWith(surface, img, items, cfg)
}

func (r *Renderer) renderWith(surface *Surface, img image.Image, items []subtitle.Item, cfg Config) error {
	if surface == nil {
		return fmt.Errorf("render: nil surface")
	}
	if img == nil {
		return fmt.Errorf("render: nil source image")
	}

	mode, ok := Get(cfg.DisplayMode)
	if !ok {
		r.log.Warnw("unknown display mode, falling back to overlay",
			"mode", cfg.DisplayMode)
		mode, _ = Get(ModeOverlay)
	}

	ctx := &Context{
		Surface: surface,
		Image:   img,
		Items:   items,
		Config:  cfg,
		Log:     r.log,
	}
	return mode.Render(ctx)
}

// UpdateConfig replaces every field named by patch wholesale. Nested objects
// are not merged: patching CardOptions discards the previous CardOptions
// value entirely.
func (r *Renderer) UpdateConfig(patch Patch) {
	r.config = r.config.apply(patch)
}

// Config returns a defensive copy of the held configuration.
func (r *Renderer) Config() Config {
	return r.config.clone()
}

// IsModeAvailable reports whether name resolves in the mode registry.
func IsModeAvailable(name string) bool {
	return Has(name)
}

// RenderOnce constructs a throwaway renderer for cfg and renders immediately.
func RenderOnce(cfg Config, surface *Surface, img image.Image, items []subtitle.Item) error {
	return New(cfg, nil).Render(surface, img, items)
}

// Render composes directly with cfg, without retaining a renderer.
func Render(surface *Surface, img image.Image, items []subtitle.Item, cfg Config) error {
	return New(cfg, nil).Render(surface, img, items)
}
