package carousel

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Carousel is one mounted product carousel: the slide set, its options, and,
// for two or more slides, the controller, input adapter and auto-advance timer.
//
// Lifecycle changes (SetOptions, SetSlides, SetModality, Unmount) are
// serialized, and each one leaves the timer matching Eligible for the state it
// wrote. The carousel lock is never held while calling into the controller,
// adapter or timer, so OnChange callbacks may read the carousel. They must not
// mutate it: a timer-driven change is delivered while the timer lock is held.
type Carousel struct {
	id       string
	clock    Clock
	scroller Scroller
	logger   *zap.Logger
	onChange func(Change)

	lifeMu sync.Mutex // serializes lifecycle changes and timer sync

	mu       sync.Mutex
	slides   SlideSet
	opts     Options
	modality Modality
	mounted  bool

	ctrl   *Controller
	driver Driver
	timer  *AutoAdvance
	unsub  func()
}

// MountOption customises Mount.
type MountOption func(*Carousel)

// WithClock sets the clock used by auto-advance.
func WithClock(clock Clock) MountOption {
	return func(c *Carousel) { c.clock = clock }
}

// WithScroller sets the view that executes scroll-adapter commands.
func WithScroller(s Scroller) MountOption {
	return func(c *Carousel) { c.scroller = s }
}

// WithLogger sets the logger. Mount adds a carousel id field.
func WithLogger(l *zap.Logger) MountOption {
	return func(c *Carousel) { c.logger = l }
}

// OnChange registers a callback for every index change.
func OnChange(fn func(Change)) MountOption {
	return func(c *Carousel) { c.onChange = fn }
}

// Mount creates a carousel for slides. The state machine only exists when
// there are at least two slides.
func Mount(slides SlideSet, opts Options, modality Modality, options ...MountOption) *Carousel {
	c := &Carousel{
		id:       uuid.NewString(),
		clock:    SystemClock(),
		logger:   zap.NewNop(),
		slides:   slides.Clone(),
		opts:     opts.Normalize(),
		modality: modality,
		mounted:  true,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.clock == nil {
		c.clock = SystemClock()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.With(zap.String("carousel", c.id))

	c.mu.Lock()
	c.buildLocked()
	c.mu.Unlock()
	c.syncTimer()

	c.logger.Debug("carousel mounted",
		zap.Int("slides", len(c.slides)),
		zap.Stringer("mode", ModeFor(len(c.slides))),
		zap.Stringer("modality", modality))
	return c
}

// ID returns the instance id used in logs.
func (c *Carousel) ID() string { return c.id }

// Mounted reports whether Unmount has not been called yet.
func (c *Carousel) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Mode returns the current rendering mode.
func (c *Carousel) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ModeFor(len(c.slides))
}

// Modality returns the active input modality.
func (c *Carousel) Modality() Modality {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modality
}

// Options returns the normalized display options.
func (c *Carousel) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Slides returns what the view renders: the placeholder for an empty set,
// otherwise the images in order.
func (c *Carousel) Slides() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return []string{PlaceholderLocator}
	}
	return c.slides.Clone()
}

// Index returns the active index; zero outside interactive mode.
func (c *Carousel) Index() int {
	ctrl := c.controller()
	if ctrl == nil {
		return 0
	}
	return ctrl.Index()
}

// HasMultiple reports whether the state machine is running.
func (c *Carousel) HasMultiple() bool {
	ctrl := c.controller()
	return ctrl != nil && ctrl.HasMultiple()
}

// ShowArrows reports whether arrows should be rendered.
func (c *Carousel) ShowArrows() bool {
	return c.Options().ShowArrows && c.HasMultiple()
}

// ShowIndicators reports whether the indicator row should be rendered.
func (c *Carousel) ShowIndicators() bool {
	return c.Options().ShowIndicators && c.HasMultiple()
}

// Indicators returns the indicator row, nil when it is hidden.
func (c *Carousel) Indicators() []Indicator {
	if !c.ShowIndicators() {
		return nil
	}
	ctrl := c.controller()
	if ctrl == nil {
		return nil
	}
	n, active := ctrl.Len(), ctrl.Index()
	out := make([]Indicator, n)
	for i := range out {
		out[i] = Indicator{Index: i, Active: i == active}
	}
	return out
}

// Offset returns the transform translation for the active slide. Under the
// scroll modality the view owns the scroll position and Offset is zero.
func (c *Carousel) Offset() float64 {
	c.mu.Lock()
	driver := c.driver
	c.mu.Unlock()
	if t, ok := driver.(*TransformAdapter); ok {
		return t.Offset()
	}
	return 0
}

// TimerRunning reports whether auto-advance is active.
func (c *Carousel) TimerRunning() bool {
	c.mu.Lock()
	timer := c.timer
	c.mu.Unlock()
	return timer != nil && timer.Running()
}

// TapArrow handles an arrow press. Hidden arrows ignore presses.
func (c *Carousel) TapArrow(d Direction) bool {
	if !c.ShowArrows() {
		return false
	}
	c.mu.Lock()
	driver, ctrl := c.driver, c.ctrl
	c.mu.Unlock()
	if t, ok := driver.(*TransformAdapter); ok {
		return t.TapArrow(d)
	}
	if ctrl == nil {
		return false
	}
	if d == Backward {
		return ctrl.Previous(SourceArrow)
	}
	return ctrl.Next(SourceArrow)
}

// TapIndicator handles an indicator press. Hidden indicators ignore presses.
func (c *Carousel) TapIndicator(i int) bool {
	if !c.ShowIndicators() {
		return false
	}
	c.mu.Lock()
	driver := c.driver
	c.mu.Unlock()
	if driver == nil {
		return false
	}
	return driver.TapIndicator(i)
}

// HandleScroll forwards a scroll sample to the scroll adapter. It does
// nothing under the transform modality.
func (c *Carousel) HandleScroll(ev ScrollEvent) bool {
	c.mu.Lock()
	driver := c.driver
	c.mu.Unlock()
	if s, ok := driver.(*ScrollAdapter); ok {
		return s.HandleScroll(ev)
	}
	return false
}

// SetOptions applies new display options.
func (c *Carousel) SetOptions(opts Options) {
	opts = opts.Normalize()
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	prev := c.opts
	c.opts = opts
	driver, timer := c.driver, c.timer
	c.mu.Unlock()

	if driver != nil && prev.Width != opts.Width {
		driver.SetViewport(opts.Width)
	}
	if timer != nil {
		timer.SetInterval(opts.AutoAdvanceInterval)
	}
	c.syncTimer()
}

// SetSlides replaces the slide set. Crossing the two-slide boundary builds
// or tears down the state machine; otherwise the index is re-clamped.
func (c *Carousel) SetSlides(slides SlideSet) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	before := ModeFor(len(c.slides))
	after := ModeFor(len(slides))
	c.slides = slides.Clone()

	switch {
	case before == ModeInteractive && after == ModeInteractive:
		ctrl := c.ctrl
		c.mu.Unlock()
		ctrl.Resize(len(slides))
		c.syncTimer()
	case before == ModeInteractive:
		teardown := c.detachLocked()
		c.mu.Unlock()
		teardown()
	case after == ModeInteractive:
		c.buildLocked()
		c.mu.Unlock()
		c.syncTimer()
	default:
		c.mu.Unlock()
	}
	c.logger.Debug("carousel slides replaced",
		zap.Int("slides", len(slides)),
		zap.Stringer("mode", after))
}

// SetModality swaps the input adapter. The timer re-evaluates eligibility,
// which stops it when switching to the scroll modality.
func (c *Carousel) SetModality(m Modality) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mu.Lock()
	if !c.mounted || c.modality == m {
		c.mu.Unlock()
		return
	}
	c.modality = m
	old := c.driver
	if c.ctrl != nil {
		c.driver = c.newDriverLocked()
	}
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}
	c.syncTimer()
	c.logger.Debug("carousel modality switched", zap.Stringer("modality", m))
}

// Unmount cancels the timer and detaches every listener before returning.
// Later calls do nothing.
func (c *Carousel) Unmount() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	teardown := c.detachLocked()
	c.mu.Unlock()

	teardown()
	c.logger.Debug("carousel unmounted")
}

func (c *Carousel) controller() *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctrl
}

// buildLocked creates the state machine for an interactive slide set.
func (c *Carousel) buildLocked() {
	if ModeFor(len(c.slides)) != ModeInteractive {
		return
	}
	ctrl := NewController(len(c.slides))
	c.ctrl = ctrl
	c.unsub = ctrl.Subscribe(c.notify)
	c.driver = c.newDriverLocked()
	c.timer = NewAutoAdvance(c.clock, c.opts.AutoAdvanceInterval, func() {
		ctrl.Next(SourceTimer)
	})
}

func (c *Carousel) newDriverLocked() Driver {
	if c.modality == ModalityScroll {
		return NewScrollAdapter(c.ctrl, c.opts.Width, c.scroller)
	}
	return NewTransformAdapter(c.ctrl, c.opts.Width)
}

// detachLocked clears the state machine fields and returns the function that
// releases them. The function must run after the lock is dropped.
func (c *Carousel) detachLocked() func() {
	timer, driver, unsub := c.timer, c.driver, c.unsub
	c.ctrl, c.driver, c.timer, c.unsub = nil, nil, nil, nil
	return func() {
		if timer != nil {
			timer.Stop()
		}
		if driver != nil {
			driver.Close()
		}
		if unsub != nil {
			unsub()
		}
	}
}

// syncTimer starts or stops the timer to match the current state. Callers
// other than Mount must hold lifeMu.
func (c *Carousel) syncTimer() {
	c.mu.Lock()
	timer := c.timer
	eligible := c.mounted && Eligible(c.opts, len(c.slides), c.modality)
	c.mu.Unlock()
	if timer == nil {
		return
	}
	if timer.Sync(eligible) {
		c.logger.Debug("auto-advance", zap.Stringer("state", timer.State()))
	}
}

func (c *Carousel) notify(ch Change) {
	if c.onChange != nil {
		c.onChange(ch)
	}
}
