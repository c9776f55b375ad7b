package carousel

import (
	"time"
)

// PlaceholderLocator is rendered in place of a carousel that has no images.
const PlaceholderLocator = "https://via.placeholder.com/300x160/e5e7eb/6b7280?text=No+Image"

const (
	// DefaultHeight matches the card height used when the screen passes none.
	DefaultHeight = 160

	// DefaultInterval is the auto-advance cadence when none is configured.
	DefaultInterval = 3 * time.Second
)

// SlideSet is the ordered list of image locators shown by one carousel.
type SlideSet []string

// Clone returns an independent copy of the set.
func (s SlideSet) Clone() SlideSet {
	if len(s) == 0 {
		return nil
	}
	dup := make(SlideSet, len(s))
	copy(dup, s)
	return dup
}

// Mode is the rendering mode a slide count selects.
type Mode int

const (
	// ModePlaceholder renders a single placeholder slide (no images).
	ModePlaceholder Mode = iota
	// ModeStatic renders the only image without navigation.
	ModeStatic
	// ModeInteractive runs the navigation state machine.
	ModeInteractive
)

// ModeFor returns the rendering mode for n slides.
func ModeFor(n int) Mode {
	switch {
	case n <= 0:
		return ModePlaceholder
	case n == 1:
		return ModeStatic
	default:
		return ModeInteractive
	}
}

func (m Mode) String() string {
	switch m {
	case ModePlaceholder:
		return "placeholder"
	case ModeStatic:
		return "static"
	default:
		return "interactive"
	}
}

// Options are the per-card display options supplied by the screen.
type Options struct {
	Width               float64
	Height              float64
	ShowArrows          bool
	ShowIndicators      bool
	AutoAdvance         bool
	AutoAdvanceInterval time.Duration
}

// DefaultOptions mirrors the defaults the product screen falls back to.
func DefaultOptions() Options {
	return Options{
		Height:              DefaultHeight,
		ShowArrows:          true,
		ShowIndicators:      true,
		AutoAdvance:         false,
		AutoAdvanceInterval: DefaultInterval,
	}
}

// Normalize replaces out-of-range values with defaults.
func (o Options) Normalize() Options {
	if o.AutoAdvanceInterval <= 0 {
		o.AutoAdvanceInterval = DefaultInterval
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 {
		o.Width = 0
	}
	return o
}

// Indicator is one dot in the indicator row.
type Indicator struct {
	Index  int
	Active bool
}

// Direction is an arrow direction.
type Direction int

const (
	Backward Direction = iota
	Forward
)
