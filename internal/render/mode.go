package render

import (
	"image"
	"sort"

	"go.uber.org/zap"

	"github.com/snapvo/snapvo/internal/subtitle"
)

// built-in mode names
const (
	ModeOverlay   = "overlay"
	ModeSeparated = "separated"
	ModeCard      = "card"
	ModeElegant   = "elegant"
	ModeStitch    = "stitch"
)

// Context bundles everything one render call needs. It is built fresh per
// call and holds only borrowed references; nothing in it outlives the call.
type Context struct {
	Surface *Surface
	Image   image.Image
	Items   []subtitle.Item
	Config  Config
	Log     *zap.SugaredLogger
}

// Mode is a display-mode strategy. Render sizes the surface and issues all
// drawing commands for its composition; it must not retain the context.
type Mode interface {
	Name() string
	Render(ctx *Context) error
}

var modes = make(map[string]Mode)

// Register adds a mode strategy under its name. Re-registering a name
// overwrites the previous entry, which keeps test doubles cheap.
func Register(m Mode) {
	modes[m.Name()] = m
}

// Get returns the registered mode for name.
func Get(name string) (Mode, bool) {
	m, ok := modes[name]
	return m, ok
}

// Has reports whether name resolves to a registered mode.
func Has(name string) bool {
	_, ok := modes[name]
	return ok
}

// List returns the registered mode names, sorted.
func List() []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(&overlayMode{})
	Register(&separatedMode{})
	Register(&cardMode{})
	Register(&elegantMode{})
	Register(&stitchMode{})
}
