package carousel

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Clock schedules callbacks. SystemClock uses real time; VirtualClock is
// advanced explicitly by a frame loop or a test.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Timer is a scheduled callback.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
func (systemClock) Now() time.Time                            { return time.Now() }

// TimerState is the auto-advance state.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
)

func (s TimerState) String() string {
	if s == TimerRunning {
		return "running"
	}
	return "idle"
}

// Eligible reports whether auto-advance may run for the given inputs.
// Auto-advance is disabled under the scroll modality so it never fights a drag.
func Eligible(opts Options, length int, modality Modality) bool {
	return opts.AutoAdvance && length > 1 && modality == ModalityTransform
}

// AutoAdvance fires a callback at a fixed interval while running.
//
// Start and Stop are idempotent. A callback scheduled before Stop never runs
// fire after Stop returns: each schedule carries a generation that Stop
// invalidates, and fire runs with the timer lock held. State and Running do
// not take the lock and are safe to call from fire.
type AutoAdvance struct {
	clock Clock
	fire  func()

	mu       sync.Mutex
	interval time.Duration
	state    TimerState
	handle   Timer
	gen      uint64

	running atomic.Bool
}

// NewAutoAdvance returns an idle timer. fire must not start, stop or
// reconfigure the timer.
func NewAutoAdvance(clock Clock, interval time.Duration, fire func()) *AutoAdvance {
	if clock == nil {
		clock = SystemClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &AutoAdvance{clock: clock, fire: fire, interval: interval}
}

// State returns the current state.
func (t *AutoAdvance) State() TimerState {
	if t.running.Load() {
		return TimerRunning
	}
	return TimerIdle
}

// Running reports whether the timer is scheduled.
func (t *AutoAdvance) Running() bool {
	return t.State() == TimerRunning
}

// Sync starts or stops the timer to match eligible. It reports whether the
// state changed.
func (t *AutoAdvance) Sync(eligible bool) bool {
	if eligible {
		return t.Start()
	}
	return t.Stop()
}

// Start moves Idle → Running. Starting a running timer does nothing.
func (t *AutoAdvance) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TimerRunning {
		return false
	}
	t.state = TimerRunning
	t.running.Store(true)
	t.gen++
	t.scheduleLocked(t.gen)
	return true
}

// Stop moves Running → Idle and releases the handle. Stopping an idle timer
// does nothing.
func (t *AutoAdvance) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TimerIdle {
		return false
	}
	t.state = TimerIdle
	t.running.Store(false)
	t.gen++
	if t.handle != nil {
		t.handle.Stop()
		t.handle = nil
	}
	return true
}

// SetInterval changes the cadence. A running timer restarts its phase.
func (t *AutoAdvance) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if d == t.interval {
		return
	}
	t.interval = d
	if t.state != TimerRunning {
		return
	}
	if t.handle != nil {
		t.handle.Stop()
	}
	t.gen++
	t.scheduleLocked(t.gen)
}

func (t *AutoAdvance) scheduleLocked(gen uint64) {
	t.handle = t.clock.AfterFunc(t.interval, func() { t.tick(gen) })
}

func (t *AutoAdvance) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TimerRunning || gen != t.gen {
		return
	}
	t.fire()
	t.scheduleLocked(gen)
}

// VirtualClock is a manually advanced Clock. Callbacks run synchronously on
// the goroutine that calls Advance, in deadline order.
type VirtualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	clock *VirtualClock
	when  time.Time
	seq   uint64
	f     func()
}

// NewVirtualClock returns a clock reading start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now implements Clock.
func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc implements Clock.
func (c *VirtualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &virtualTimer{clock: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of scheduled callbacks.
func (c *VirtualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, running every callback that falls due.
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			if c.now.Before(target) {
				c.now = target
			}
			c.mu.Unlock()
			return
		}
		if next.when.After(c.now) {
			c.now = next.when
		}
		c.mu.Unlock()
		next.f()
	}
}

func (c *VirtualClock) popDueLocked(target time.Time) *virtualTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})
	first := c.timers[0]
	if first.when.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	return first
}

func (t *virtualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
