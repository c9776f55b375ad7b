package carousel

import "sync"

// Source identifies what requested an index change.
type Source int

const (
	SourceArrow Source = iota
	SourceIndicator
	SourceScroll
	SourceTimer
	SourceProgram
)

func (s Source) String() string {
	switch s {
	case SourceArrow:
		return "arrow"
	case SourceIndicator:
		return "indicator"
	case SourceScroll:
		return "scroll"
	case SourceTimer:
		return "timer"
	default:
		return "program"
	}
}

// Change describes one applied index mutation.
type Change struct {
	From   int
	To     int
	Source Source
}

type subscriber struct {
	id int
	fn func(Change)
}

// Controller owns the active index of one carousel. It is the single writer
// of the index; adapters and renderers observe it through Subscribe.
//
// Mutations are serialized per controller and observers see changes in the
// order they were applied. Observers must not mutate the controller.
type Controller struct {
	writeMu sync.Mutex // serializes mutation + notification

	mu        sync.Mutex
	length    int
	index     int
	nextID    int
	observers []subscriber
}

// NewController returns a controller at index 0 for length slides.
func NewController(length int) *Controller {
	if length < 0 {
		length = 0
	}
	return &Controller{length: length}
}

// Index returns the active index.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the slide count the controller navigates.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.length
}

// HasMultiple reports whether there is anything to navigate.
func (c *Controller) HasMultiple() bool {
	return c.Len() > 1
}

// Next advances one slide, wrapping from the last slide to the first.
func (c *Controller) Next(src Source) bool {
	return c.apply(src, func(index, length int) (int, bool) {
		if length <= 1 {
			return index, false
		}
		return (index + 1) % length, true
	})
}

// Previous steps back one slide, wrapping from the first slide to the last.
func (c *Controller) Previous(src Source) bool {
	return c.apply(src, func(index, length int) (int, bool) {
		if length <= 1 {
			return index, false
		}
		return (index - 1 + length) % length, true
	})
}

// GoTo jumps to index i. Requests outside [0, Len()-1] are ignored.
func (c *Controller) GoTo(i int, src Source) bool {
	return c.apply(src, func(index, length int) (int, bool) {
		if i < 0 || i >= length {
			return index, false
		}
		return i, true
	})
}

// Resize changes the slide count, clamping the index into the new range.
func (c *Controller) Resize(length int) bool {
	if length < 0 {
		length = 0
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.length = length
	from := c.index
	to := from
	if to >= length {
		to = length - 1
	}
	if to < 0 {
		to = 0
	}
	c.index = to
	observers := c.observersLocked()
	c.mu.Unlock()

	if to == from {
		return false
	}
	notify(observers, Change{From: from, To: to, Source: SourceProgram})
	return true
}

// Subscribe registers fn for every applied change and returns a function that
// removes it. The returned function is safe to call more than once.
func (c *Controller) Subscribe(fn func(Change)) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, o := range c.observers {
				if o.id == id {
					c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *Controller) apply(src Source, step func(index, length int) (int, bool)) bool {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	from := c.index
	to, ok := step(c.index, c.length)
	if !ok || to == from {
		c.mu.Unlock()
		return false
	}
	c.index = to
	observers := c.observersLocked()
	c.mu.Unlock()

	notify(observers, Change{From: from, To: to, Source: src})
	return true
}

func (c *Controller) observersLocked() []subscriber {
	if len(c.observers) == 0 {
		return nil
	}
	dup := make([]subscriber, len(c.observers))
	copy(dup, c.observers)
	return dup
}

func notify(observers []subscriber, change Change) {
	for _, o := range observers {
		o.fn(change)
	}
}
