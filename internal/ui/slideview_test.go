package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/carousel"
)

func mountView(t *testing.T, slides carousel.SlideSet, width int, modality carousel.Modality) *slideView {
	t.Helper()
	v := newSlideView(width)
	opts := carousel.DefaultOptions()
	opts.Width = float64(width)
	car := carousel.Mount(slides, opts, modality,
		carousel.WithClock(carousel.NewVirtualClock(epoch)),
		carousel.WithScroller(v))
	v.car = car
	t.Cleanup(car.Unmount)
	return v
}

func settle(v *slideView) {
	for i := 0; i < 200 && v.animating(); i++ {
		v.step()
	}
}

func TestSlideView_RenderKeepsWidth(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	cases := []struct {
		name   string
		slides carousel.SlideSet
	}{
		{"placeholder", nil},
		{"static", carousel.SlideSet{"https://cdn.example.com/a.jpg"}},
		{"interactive", carousel.SlideSet{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := mountView(t, tc.slides, 30, carousel.ModalityTransform)
			lines := strings.Split(v.render(styles, slideRows), "\n")
			if len(lines) != slideRows {
				t.Fatalf("rows = %d, want %d", len(lines), slideRows)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != 30 {
					t.Fatalf("row %d width = %d, want 30", i, w)
				}
			}
		})
	}
}

func TestSlideView_PlaceholderLabel(t *testing.T) {
	v := mountView(t, nil, 30, carousel.ModalityTransform)
	out := v.render(GetTheme("Slate").Styles(), slideRows)
	if !strings.Contains(out, "No Image") {
		t.Fatalf("placeholder render = %q, want No Image label", out)
	}
}

func TestSlideView_ShowsActiveSlide(t *testing.T) {
	v := mountView(t, carousel.SlideSet{"a.jpg", "b.jpg", "c.jpg"}, 30, carousel.ModalityTransform)
	styles := GetTheme("Slate").Styles()

	v.car.TapIndicator(2)
	settle(v)
	if v.pos != 60 {
		t.Fatalf("pos = %v, want 60", v.pos)
	}
	if out := v.render(styles, slideRows); !strings.Contains(out, "image 3/3") {
		t.Fatalf("render after settling = %q, want image 3/3", out)
	}
}

func TestSlideView_TransformTapStartsAnimation(t *testing.T) {
	v := mountView(t, carousel.SlideSet{"a.jpg", "b.jpg", "c.jpg"}, 30, carousel.ModalityTransform)
	if v.animating() {
		t.Fatalf("animating() = true before any navigation")
	}

	v.car.TapArrow(carousel.Forward)
	if !v.animating() {
		t.Fatalf("animating() = false after a tap moved the offset")
	}
	v.step()
	if v.pos <= 0 || v.pos >= 30 {
		t.Fatalf("pos after one frame = %v, want between 0 and 30", v.pos)
	}
	settle(v)
	if v.pos != 30 || v.animating() {
		t.Fatalf("settled pos = %v animating = %v, want 30/false", v.pos, v.animating())
	}
}

func TestSlideView_ScrollCommandsAreExecuted(t *testing.T) {
	v := mountView(t, carousel.SlideSet{"a.jpg", "b.jpg", "c.jpg"}, 30, carousel.ModalityScroll)

	v.ScrollTo(carousel.ScrollCommand{X: 30, Token: 9})
	if v.pos != 30 || v.token != 9 {
		t.Fatalf("instant scroll: pos=%v token=%d, want 30/9", v.pos, v.token)
	}
	v.step()
	if v.token != 0 {
		t.Fatalf("settled instant scroll kept token %d", v.token)
	}

	v.ScrollTo(carousel.ScrollCommand{X: 60, Animated: true, Token: 10})
	if v.pos != 30 {
		t.Fatalf("animated scroll jumped to %v", v.pos)
	}
	settle(v)
	if v.pos != 60 || v.token != 0 {
		t.Fatalf("animated scroll: pos=%v token=%d, want 60/0", v.pos, v.token)
	}
	// Tagged samples are not resampled into the index.
	if got := v.car.Index(); got != 0 {
		t.Fatalf("index = %d, want 0", got)
	}
}

func TestSlideView_DragClampsOverscroll(t *testing.T) {
	v := mountView(t, carousel.SlideSet{"a.jpg", "b.jpg"}, 30, carousel.ModalityScroll)

	for i := 0; i < 3; i++ {
		v.drag(carousel.Backward)
	}
	if v.pos != -15 {
		t.Fatalf("pos = %v, want -15", v.pos)
	}
	if got := v.car.Index(); got != 0 {
		t.Fatalf("index after left overscroll = %d, want 0", got)
	}

	for i := 0; i < 5; i++ {
		v.drag(carousel.Forward)
	}
	if v.pos != 45 {
		t.Fatalf("pos = %v, want 45", v.pos)
	}
	if got := v.car.Index(); got != 1 {
		t.Fatalf("index after right overscroll = %d, want 1", got)
	}

	settle(v)
	if v.pos != 30 {
		t.Fatalf("pos after snap = %v, want 30", v.pos)
	}
}

func TestSlideView_DragIgnoredUnderTransform(t *testing.T) {
	v := mountView(t, carousel.SlideSet{"a.jpg", "b.jpg"}, 30, carousel.ModalityTransform)
	if v.drag(carousel.Forward) {
		t.Fatalf("drag under transform changed the index")
	}
	if v.pos != 0 {
		t.Fatalf("drag under transform moved the strip to %v", v.pos)
	}
}

func TestSlideView_ResizeKeepsPage(t *testing.T) {
	v := mountView(t, carousel.SlideSet{"a.jpg", "b.jpg", "c.jpg"}, 30, carousel.ModalityTransform)
	v.car.TapIndicator(1)
	settle(v)

	v.resize(50)
	if v.pos != 50 || v.width != 50 {
		t.Fatalf("after resize pos=%v width=%d, want 50/50", v.pos, v.width)
	}
}
