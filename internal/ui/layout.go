package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the sidebar narrows.
	LayoutCompactWidth = 90

	// LayoutWideWidth is the minimum width to show the header stats line inline.
	LayoutWideWidth = 130
)

// Fixed layout dimensions.
const (
	sidebarWidth        = 26
	sidebarCompactWidth = 18

	// slideRows is the height of the slide strip inside a card.
	slideRows = 5

	// cardChrome is everything in a card besides the strip: indicators,
	// name, three detail rows, the action row and the border.
	cardChrome = 1 + 1 + 3 + 1 + 2

	minSlideWidth = 12

	// arrowGutter is the width taken by the arrow column on each side.
	arrowGutter = 2
)

// Timing constants.
const (
	// FrameInterval drives slide animation and the carousel clock.
	FrameInterval = time.Second / frameFPS

	// DefaultUIInterval is how often the store is polled for a new catalog.
	DefaultUIInterval = 500 * time.Millisecond

	// maxFrameStep caps the clock advance for one frame after a stall.
	maxFrameStep = time.Second

	// statusTTL is how long a transient footer message stays visible.
	statusTTL = 3 * time.Second
)

func cardHeight() int {
	return slideRows + cardChrome
}
