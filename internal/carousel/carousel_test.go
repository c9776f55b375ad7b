package carousel

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func threeSlides() SlideSet {
	return SlideSet{"a.jpg", "b.jpg", "c.jpg"}
}

func autoOptions() Options {
	opts := DefaultOptions()
	opts.Width = 300
	opts.AutoAdvance = true
	opts.AutoAdvanceInterval = 3000 * time.Millisecond
	return opts
}

func TestMount_EmptySetRendersPlaceholder(t *testing.T) {
	clock := NewVirtualClock(epoch)
	c := Mount(nil, autoOptions(), ModalityTransform, WithClock(clock))
	defer c.Unmount()

	if c.Mode() != ModePlaceholder {
		t.Fatalf("mode = %v, want placeholder", c.Mode())
	}
	slides := c.Slides()
	if len(slides) != 1 || slides[0] != PlaceholderLocator {
		t.Fatalf("slides = %v, want [%s]", slides, PlaceholderLocator)
	}
	if c.ShowArrows() || c.ShowIndicators() || c.Indicators() != nil {
		t.Fatalf("placeholder exposes navigation")
	}
	if c.TimerRunning() || clock.Pending() != 0 {
		t.Fatalf("placeholder started a timer (pending=%d)", clock.Pending())
	}
	if c.TapArrow(Forward) || c.TapIndicator(0) {
		t.Fatalf("placeholder accepted navigation")
	}
}

func TestMount_SingleSlideIsStatic(t *testing.T) {
	clock := NewVirtualClock(epoch)
	c := Mount(SlideSet{"only.jpg"}, autoOptions(), ModalityTransform, WithClock(clock))
	defer c.Unmount()

	if c.Mode() != ModeStatic {
		t.Fatalf("mode = %v, want static", c.Mode())
	}
	if c.HasMultiple() || c.ShowArrows() || c.ShowIndicators() {
		t.Fatalf("single slide exposes navigation")
	}
	if clock.Pending() != 0 {
		t.Fatalf("pending callbacks = %d, want 0", clock.Pending())
	}
	clock.Advance(time.Minute)
	if c.Index() != 0 {
		t.Fatalf("index = %d, want 0", c.Index())
	}
}

func TestCarousel_AutoAdvanceCyclesTransform(t *testing.T) {
	clock := NewVirtualClock(epoch)
	var changes []Change
	c := Mount(threeSlides(), autoOptions(), ModalityTransform,
		WithClock(clock),
		OnChange(func(ch Change) { changes = append(changes, ch) }))
	defer c.Unmount()

	if !c.TimerRunning() {
		t.Fatalf("timer not running after mount")
	}
	for i, want := range []int{1, 2, 0} {
		clock.Advance(3 * time.Second)
		if got := c.Index(); got != want {
			t.Fatalf("tick %d: index = %d, want %d", i+1, got, want)
		}
	}
	if got := c.Offset(); got != 0 {
		t.Fatalf("offset = %v, want 0", got)
	}
	for _, ch := range changes {
		if ch.Source != SourceTimer {
			t.Fatalf("change %#v not tagged as timer", ch)
		}
	}
}

func TestCarousel_IndicatorsTrackIndex(t *testing.T) {
	c := Mount(threeSlides(), autoOptions(), ModalityTransform, WithClock(NewVirtualClock(epoch)))
	defer c.Unmount()

	c.TapIndicator(2)
	got := c.Indicators()
	want := []Indicator{{0, false}, {1, false}, {2, true}}
	if len(got) != len(want) {
		t.Fatalf("indicators = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indicators = %v, want %v", got, want)
		}
	}
	if off := c.Offset(); off != -600 {
		t.Fatalf("offset = %v, want -600", off)
	}
}

func TestCarousel_HiddenControlsIgnoreInput(t *testing.T) {
	opts := autoOptions()
	opts.ShowArrows = false
	opts.ShowIndicators = false
	c := Mount(threeSlides(), opts, ModalityTransform, WithClock(NewVirtualClock(epoch)))
	defer c.Unmount()

	if c.TapArrow(Forward) || c.TapIndicator(1) {
		t.Fatalf("hidden controls accepted input")
	}
	if c.Indicators() != nil {
		t.Fatalf("hidden indicator row returned %v", c.Indicators())
	}
}

func TestCarousel_SetOptionsDisablesAutoAdvance(t *testing.T) {
	clock := NewVirtualClock(epoch)
	opts := autoOptions()
	c := Mount(threeSlides(), opts, ModalityTransform, WithClock(clock))
	defer c.Unmount()

	clock.Advance(3 * time.Second)
	opts.AutoAdvance = false
	c.SetOptions(opts)
	clock.Advance(30 * time.Second)

	if got := c.Index(); got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	if c.TimerRunning() || clock.Pending() != 0 {
		t.Fatalf("timer still scheduled after disabling auto-advance")
	}

	opts.AutoAdvance = true
	c.SetOptions(opts)
	clock.Advance(3 * time.Second)
	if got := c.Index(); got != 2 {
		t.Fatalf("index after re-enabling = %d, want 2", got)
	}
}

func TestCarousel_ScrollModalityStopsTimer(t *testing.T) {
	clock := NewVirtualClock(epoch)
	var cmds []ScrollCommand
	c := Mount(threeSlides(), autoOptions(), ModalityTransform,
		WithClock(clock),
		WithScroller(ScrollerFunc(func(cmd ScrollCommand) { cmds = append(cmds, cmd) })))
	defer c.Unmount()

	c.SetModality(ModalityScroll)
	if c.TimerRunning() || clock.Pending() != 0 {
		t.Fatalf("timer still scheduled under scroll modality")
	}
	if c.Offset() != 0 {
		t.Fatalf("offset under scroll modality = %v, want 0", c.Offset())
	}

	if !c.HandleScroll(UserScroll(0.6 * 300)) {
		t.Fatalf("user scroll did not move the index")
	}
	if len(cmds) != 0 {
		t.Fatalf("user scroll echoed %d scroll commands", len(cmds))
	}

	c.TapArrow(Forward)
	if c.Index() != 2 || len(cmds) != 1 || cmds[0].X != 600 {
		t.Fatalf("arrow under scroll: index=%d cmds=%#v", c.Index(), cmds)
	}

	c.SetModality(ModalityTransform)
	if !c.TimerRunning() {
		t.Fatalf("timer not restarted after returning to transform")
	}
	if c.HandleScroll(UserScroll(0)) {
		t.Fatalf("transform modality sampled a scroll event")
	}
	if c.Offset() != -600 {
		t.Fatalf("offset = %v, want -600", c.Offset())
	}
}

func TestCarousel_SetSlidesCrossesModes(t *testing.T) {
	clock := NewVirtualClock(epoch)
	c := Mount(SlideSet{"one.jpg"}, autoOptions(), ModalityTransform, WithClock(clock))
	defer c.Unmount()

	c.SetSlides(threeSlides())
	if c.Mode() != ModeInteractive || !c.TimerRunning() {
		t.Fatalf("growing to three slides: mode=%v running=%v", c.Mode(), c.TimerRunning())
	}
	c.TapIndicator(2)

	c.SetSlides(SlideSet{"a.jpg", "b.jpg"})
	if got := c.Index(); got != 1 {
		t.Fatalf("index after shrink = %d, want 1", got)
	}

	c.SetSlides(nil)
	if c.Mode() != ModePlaceholder || c.TimerRunning() || clock.Pending() != 0 {
		t.Fatalf("tear down left state behind (pending=%d)", clock.Pending())
	}
	if c.Index() != 0 {
		t.Fatalf("index after tear down = %d, want 0", c.Index())
	}
}

func TestCarousel_UnmountStopsEverything(t *testing.T) {
	clock := NewVirtualClock(epoch)
	var notified int
	c := Mount(threeSlides(), autoOptions(), ModalityTransform,
		WithClock(clock),
		OnChange(func(Change) { notified++ }))

	clock.Advance(3 * time.Second)
	c.Unmount()
	c.Unmount()

	if c.Mounted() {
		t.Fatalf("Mounted() = true after Unmount")
	}
	if clock.Pending() != 0 {
		t.Fatalf("pending callbacks after unmount = %d, want 0", clock.Pending())
	}
	clock.Advance(time.Minute)
	if notified != 1 {
		t.Fatalf("notified = %d, want 1", notified)
	}

	c.SetSlides(threeSlides())
	c.SetOptions(autoOptions())
	c.SetModality(ModalityScroll)
	if clock.Pending() != 0 || c.TimerRunning() {
		t.Fatalf("unmounted carousel restarted its timer")
	}
}

func TestCarousel_LogsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	clock := NewVirtualClock(epoch)
	c := Mount(threeSlides(), autoOptions(), ModalityTransform,
		WithClock(clock), WithLogger(zap.New(core)))
	c.Unmount()

	for _, msg := range []string{"carousel mounted", "auto-advance", "carousel unmounted"} {
		if logs.FilterMessage(msg).Len() == 0 {
			t.Fatalf("missing %q log entry", msg)
		}
	}
	for _, entry := range logs.All() {
		if entry.ContextMap()["carousel"] != c.ID() {
			t.Fatalf("entry %q missing carousel id", entry.Message)
		}
	}
}

func TestCarousel_ConcurrentLifecycleKeepsTimerConsistent(t *testing.T) {
	clock := NewVirtualClock(epoch)
	c := Mount(threeSlides(), autoOptions(), ModalityTransform, WithClock(clock))
	defer c.Unmount()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				opts := autoOptions()
				opts.AutoAdvance = (i+j)%2 == 0
				c.SetOptions(opts)
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if (i+j)%2 == 0 {
					c.SetModality(ModalityScroll)
				} else {
					c.SetModality(ModalityTransform)
				}
			}
		}(i)
	}
	wg.Wait()

	want := Eligible(c.Options(), len(threeSlides()), c.Modality())
	if got := c.TimerRunning(); got != want {
		t.Fatalf("TimerRunning() = %v, want %v (modality=%v auto=%v)",
			got, want, c.Modality(), c.Options().AutoAdvance)
	}
	wantPending := 0
	if want {
		wantPending = 1
	}
	if got := clock.Pending(); got != wantPending {
		t.Fatalf("pending callbacks = %d, want %d", got, wantPending)
	}
}
