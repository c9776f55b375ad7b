// Package carousel implements the navigation state machine behind each product
// card's image carousel.
//
// # Overview
//
// A carousel shows an ordered SlideSet. The slide count picks the rendering
// mode:
//
//	0 slides   ModePlaceholder   one placeholder image, no controls
//	1 slide    ModeStatic        the image, no controls, no timer
//	2+ slides  ModeInteractive   controller + adapter + optional timer
//
// Only interactive carousels own state. The placeholder and static modes are
// pure rendering and never allocate a controller or schedule a callback.
//
// # Components
//
// Controller:
//   - Owns the active index and is its only writer
//   - Next/Previous wrap cyclically; GoTo ignores out-of-range targets
//   - Observers are notified in mutation order, tagged with a Source
//
// TransformAdapter:
//   - Arrow and indicator taps call the controller
//   - The index is rendered as a translation, Offset(i, w) = -i*w
//
// ScrollAdapter:
//   - User scroll samples snap to the nearest page (PageAt) and call GoTo
//   - Changes from any other source become ScrollCommand values for the view
//   - Commands carry a token; scroll events echoing a token are not sampled,
//     and changes that came from scrolling are not scrolled back
//
// AutoAdvance:
//   - Idle/Running timer that calls Next at a fixed interval
//   - Runs only when Eligible: enabled, more than one slide, transform modality
//   - Manual navigation does not reset the phase
//
// # Lifecycle
//
// Mount builds whatever the mode needs and starts the timer when eligible.
// SetOptions, SetSlides and SetModality re-evaluate eligibility; crossing the
// two-slide boundary builds or tears down the state machine. Unmount stops the
// timer and detaches every observer before it returns, so no callback touches
// the carousel afterwards.
//
// # Clocks
//
// The timer is written against the Clock interface. SystemClock uses
// time.AfterFunc. VirtualClock runs callbacks synchronously from Advance,
// which the terminal UI drives from its frame tick and tests drive directly.
//
// # Concurrency
//
// Every type is safe for concurrent use. Mutations of one controller are
// serialized. Carousel lifecycle calls are serialized too, and each leaves the
// timer running exactly when the carousel is eligible. The carousel's state
// lock is never held while calling into the controller, adapter or timer.
package carousel
