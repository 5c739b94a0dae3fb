package render

// subtitle placement within the frame
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
	PositionCenter = "center"
)

// subtitle backdrop treatment
const (
	BackgroundTranslucent = "translucent"
	BackgroundSolid       = "solid"
	BackgroundNone        = "none"
)

// separator styles for stitch mode
const (
	SeparatorNone  = "none"
	SeparatorWhite = "white"
	SeparatorBlack = "black"
)

// SubtitleStyle controls how cue text is drawn. Modes interpret it as far
// as it applies to them; card modes ignore Position and Background.
type SubtitleStyle struct {
	Position   string
	Background string
	FontSize   float64
	Layout     string
}

// CardOptions carries card-mode extras. The footer timestamp defaults to the
// first cue's start time when Timestamp is zero or negative.
type CardOptions struct {
	ShowTimestamp bool
	Timestamp     float64
}

// Config is the full renderer configuration. Callers own it; the facade
// holds a copy and replaces fields wholesale through Patch.
type Config struct {
	SubtitleStyle        SubtitleStyle
	DisplayMode          string
	StitchSeparator      string
	StitchSeparatorWidth float64
	StitchCropRatio      float64
	VideoTitle           string
	CardOptions          *CardOptions
}

// Patch is a partial Config update. Each non-nil field replaces the
// corresponding Config field wholesale; in particular a CardOptions patch
// replaces the whole previous CardOptions value, it is not merged into it.
type Patch struct {
	SubtitleStyle        *SubtitleStyle
	DisplayMode          *string
	StitchSeparator      *string
	StitchSeparatorWidth *float64
	StitchCropRatio      *float64
	VideoTitle           *string
	CardOptions          *CardOptions
}

// DefaultConfig returns the configuration used when the caller supplies
// nothing: bottom-anchored translucent captions in overlay mode.
func DefaultConfig() Config {
	return Config{
		SubtitleStyle: SubtitleStyle{
			Position:   PositionBottom,
			Background: BackgroundTranslucent,
			FontSize:   16,
		},
		DisplayMode:          ModeOverlay,
		StitchSeparator:      SeparatorWhite,
		StitchSeparatorWidth: 2,
		StitchCropRatio:      0.18,
	}
}

func (c Config) apply(p Patch) Config {
	if p.SubtitleStyle != nil {
		c.SubtitleStyle = *p.SubtitleStyle
	}
	if p.DisplayMode != nil {
		c.DisplayMode = *p.DisplayMode
	}
	if p.StitchSeparator != nil {
		c.StitchSeparator = *p.StitchSeparator
	}
	if p.StitchSeparatorWidth != nil {
		c.StitchSeparatorWidth = *p.StitchSeparatorWidth
	}
	if p.StitchCropRatio != nil {
		c.StitchCropRatio = *p.StitchCropRatio
	}
	if p.VideoTitle != nil {
		c.VideoTitle = *p.VideoTitle
	}
	if p.CardOptions != nil {
		opts := *p.CardOptions
		c.CardOptions = &opts
	}
	return c
}

// clone returns a copy that shares no pointers with the receiver.
func (c Config) clone() Config {
	if c.CardOptions != nil {
		opts := *c.CardOptions
		c.CardOptions = &opts
	}
	return c
}

func (c Config) fontSize() float64 {
	if c.SubtitleStyle.FontSize > 0 {
		return c.SubtitleStyle.FontSize
	}
	return DefaultConfig().SubtitleStyle.FontSize
}
