package carousel

import (
	"math"
	"sync"
)

// Modality selects how input reaches the controller.
type Modality int

const (
	// ModalityTransform drives the index with arrow and indicator taps and
	// renders it as a translation offset.
	ModalityTransform Modality = iota
	// ModalityScroll samples a scroll offset into the index and renders the
	// index back as a scroll-to command.
	ModalityScroll
)

func (m Modality) String() string {
	if m == ModalityScroll {
		return "scroll"
	}
	return "transform"
}

// Driver is the shared surface of the two input adapters.
type Driver interface {
	Modality() Modality
	TapIndicator(i int) bool
	SetViewport(width float64)
	Close()
}

var (
	_ Driver = (*TransformAdapter)(nil)
	_ Driver = (*ScrollAdapter)(nil)
)

// Offset is the translation of the slide strip for index i.
func Offset(index int, fullWidth float64) float64 {
	if index == 0 {
		return 0
	}
	return -float64(index) * fullWidth
}

// TransformAdapter maps taps onto the controller and the index onto an offset.
type TransformAdapter struct {
	ctrl *Controller

	mu    sync.Mutex
	width float64
}

// NewTransformAdapter binds a transform adapter to ctrl.
func NewTransformAdapter(ctrl *Controller, width float64) *TransformAdapter {
	return &TransformAdapter{ctrl: ctrl, width: width}
}

// Modality implements Driver.
func (a *TransformAdapter) Modality() Modality { return ModalityTransform }

// TapArrow handles an arrow press.
func (a *TransformAdapter) TapArrow(d Direction) bool {
	if d == Backward {
		return a.ctrl.Previous(SourceArrow)
	}
	return a.ctrl.Next(SourceArrow)
}

// TapIndicator handles an indicator press.
func (a *TransformAdapter) TapIndicator(i int) bool {
	return a.ctrl.GoTo(i, SourceIndicator)
}

// SetViewport updates the full slide width.
func (a *TransformAdapter) SetViewport(width float64) {
	a.mu.Lock()
	a.width = width
	a.mu.Unlock()
}

// Offset returns the current translation, -index * width.
func (a *TransformAdapter) Offset() float64 {
	a.mu.Lock()
	width := a.width
	a.mu.Unlock()
	return Offset(a.ctrl.Index(), width)
}

// Close implements Driver. The transform adapter holds no subscriptions.
func (a *TransformAdapter) Close() {}

// ScrollCommand asks the view to scroll its slide strip to X.
// Scroll events produced while executing it must carry Token.
type ScrollCommand struct {
	X        float64
	Animated bool
	Token    uint64
}

// Scroller executes scroll commands. It is implemented by the view.
type Scroller interface {
	ScrollTo(cmd ScrollCommand)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(ScrollCommand)

// ScrollTo implements Scroller.
func (f ScrollerFunc) ScrollTo(cmd ScrollCommand) { f(cmd) }

type nopScroller struct{}

func (nopScroller) ScrollTo(ScrollCommand) {}

// ScrollEvent is a scroll-position sample reported by the view.
// Token is zero for user drags and the command token for programmatic scrolls.
type ScrollEvent struct {
	OffsetX   float64
	HasOffset bool
	Token     uint64
}

// UserScroll builds a scroll event for a user drag at offset x.
func UserScroll(x float64) ScrollEvent {
	return ScrollEvent{OffsetX: x, HasOffset: true}
}

// PageAt snaps a scroll offset to the nearest page. ok is false when the
// sample cannot be turned into a page.
func PageAt(offsetX, viewportWidth float64) (page int, ok bool) {
	if viewportWidth <= 0 || math.IsNaN(viewportWidth) || math.IsInf(viewportWidth, 0) {
		return 0, false
	}
	if math.IsNaN(offsetX) || math.IsInf(offsetX, 0) {
		return 0, false
	}
	return int(math.Round(offsetX / viewportWidth)), true
}

// ScrollAdapter converts scroll offsets into indices and index changes into
// scroll commands. Changes it produced itself are never turned back into
// commands, and events tagged with a command token are never sampled.
type ScrollAdapter struct {
	ctrl     *Controller
	scroller Scroller

	mu        sync.Mutex
	width     float64
	lastToken uint64
	inflight  uint64

	unsubscribe func()
}

// NewScrollAdapter binds a scroll adapter to ctrl. A nil scroller discards
// commands.
func NewScrollAdapter(ctrl *Controller, width float64, scroller Scroller) *ScrollAdapter {
	if scroller == nil {
		scroller = nopScroller{}
	}
	a := &ScrollAdapter{ctrl: ctrl, scroller: scroller, width: width}
	a.unsubscribe = ctrl.Subscribe(a.onChange)
	return a
}

// Modality implements Driver.
func (a *ScrollAdapter) Modality() Modality { return ModalityScroll }

// HandleScroll samples a scroll event. It reports whether the index changed.
func (a *ScrollAdapter) HandleScroll(ev ScrollEvent) bool {
	a.mu.Lock()
	if ev.Token != 0 {
		if ev.Token == a.inflight {
			a.inflight = 0
		}
		a.mu.Unlock()
		return false
	}
	a.inflight = 0
	width := a.width
	a.mu.Unlock()

	if !ev.HasOffset {
		return false
	}
	page, ok := PageAt(ev.OffsetX, width)
	if !ok {
		return false
	}
	return a.ctrl.GoTo(page, SourceScroll)
}

// TapIndicator jumps to slide i and scrolls there. When i is already active
// the scroll is still issued so a partial drag snaps back.
func (a *ScrollAdapter) TapIndicator(i int) bool {
	if i < 0 || i >= a.ctrl.Len() {
		return false
	}
	if a.ctrl.GoTo(i, SourceIndicator) {
		return true
	}
	a.scrollTo(i, true)
	return false
}

// SetViewport updates the page width and realigns the strip to the active
// slide without animation.
func (a *ScrollAdapter) SetViewport(width float64) {
	a.mu.Lock()
	changed := a.width != width
	a.width = width
	a.mu.Unlock()
	if changed && width > 0 {
		a.scrollTo(a.ctrl.Index(), false)
	}
}

// Scrolling reports whether a programmatic scroll has not settled yet.
func (a *ScrollAdapter) Scrolling() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inflight != 0
}

// Close detaches the adapter from the controller.
func (a *ScrollAdapter) Close() {
	a.unsubscribe()
}

func (a *ScrollAdapter) onChange(ch Change) {
	if ch.Source == SourceScroll {
		return
	}
	a.scrollTo(ch.To, true)
}

func (a *ScrollAdapter) scrollTo(index int, animated bool) {
	a.mu.Lock()
	a.lastToken++
	a.inflight = a.lastToken
	cmd := ScrollCommand{X: float64(index) * a.width, Animated: animated, Token: a.lastToken}
	a.mu.Unlock()
	a.scroller.ScrollTo(cmd)
}
