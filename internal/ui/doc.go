// Package ui provides the Bubble Tea company profile screen.
//
// # Layout
//
// The screen is a header (company name, PRO badge, stats), a tab bar, the
// active tab and a footer with the favourite and contact actions:
//
//   - Overview: the company overview rendered as markdown with glamour
//   - Products: a category sidebar and a scrolling column of product cards
//   - Posts, Certificates, Representative: placeholders
//
// # Product cards
//
// Every card owns a mounted carousel.Carousel and a slideView. The view
// renders the slide strip and, under the scroll modality, is the carousel's
// Scroller. Cards are mounted when their category is shown and unmounted
// when the category or tab changes, so hidden carousels never keep a timer.
//
// # Timing
//
// All carousels share one carousel.VirtualClock. A frame tick advances it by
// the elapsed wall time and steps the harmonica springs that animate each
// strip, so auto-advance callbacks and scroll feedback run inside Update.
//
// A slower poll tick reads the state.Store. When the catalog version moves,
// surviving products keep their carousel and receive the new image set.
//
// # Platforms
//
// Web maps left/right onto the arrows. Native maps them, and the horizontal
// mouse wheel, onto drags of the strip that snap to the nearest page. The p
// key switches every mounted carousel between the two at runtime.
package ui
