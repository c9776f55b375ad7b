package ui

import (
	"fmt"
	"math"
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/showroom/internal/carousel"
)

// Slide strip animation tuning.
const (
	frameFPS      = 30
	springFreq    = 7.0
	springDamping = 1.0

	// dragStep is the fraction of a slide one drag key press moves the strip.
	dragStep = 0.6

	// snapFrames is how many idle frames end a drag and snap to a page.
	snapFrames = 8

	settleEpsilon = 0.5
)

// slideView renders one carousel's slide strip and animates it between pages.
// Positions are in terminal columns measured from the left edge of slide 0.
//
// Under the scroll modality it is the carousel's Scroller: commands move the
// target and every animated frame reports a tagged scroll event back. Drags
// report untagged events so the carousel samples them.
type slideView struct {
	car   *carousel.Carousel
	width int

	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64

	token    uint64
	dragging bool
	snapping bool
	idle     int
}

func newSlideView(width int) *slideView {
	return &slideView{
		width:  width,
		spring: harmonica.NewSpring(harmonica.FPS(frameFPS), springFreq, springDamping),
	}
}

// ScrollTo implements carousel.Scroller. It only records the command; the
// carousel is called back from step.
func (v *slideView) ScrollTo(cmd carousel.ScrollCommand) {
	v.target = cmd.X
	v.token = cmd.Token
	v.dragging = false
	v.snapping = false
	if !cmd.Animated {
		v.pos = cmd.X
		v.vel = 0
	}
}

// resize changes the slide width and keeps the strip on the same page.
func (v *slideView) resize(width int) {
	if width == v.width || width <= 0 {
		return
	}
	page := 0
	if v.width > 0 {
		page = int(math.Round(v.pos / float64(v.width)))
	}
	v.width = width
	v.pos = float64(page * width)
	v.target = v.pos
	v.vel = 0
}

// sync parks the strip on the active slide and drops any animation state.
func (v *slideView) sync() {
	if v.car == nil {
		return
	}
	v.pos = float64(v.car.Index() * v.width)
	v.target = v.pos
	v.vel = 0
	v.token = 0
	v.dragging = false
	v.snapping = false
}

// drag moves the strip by dir slides' worth of dragStep and reports the new
// position as a user scroll.
func (v *slideView) drag(dir carousel.Direction) bool {
	if v.car == nil || v.car.Modality() != carousel.ModalityScroll || !v.car.HasMultiple() || v.width <= 0 {
		return false
	}
	step := dragStep * float64(v.width)
	if dir == carousel.Backward {
		step = -step
	}
	n := len(v.car.Slides())
	w := float64(v.width)
	v.pos = clampFloat(v.pos+step, -w/2, float64(n-1)*w+w/2)
	v.vel = 0
	v.target = v.pos
	v.token = 0
	v.dragging = true
	v.snapping = false
	v.idle = 0
	return v.car.HandleScroll(carousel.UserScroll(v.pos))
}

// step advances the animation by one frame.
func (v *slideView) step() {
	if v.car == nil || !v.car.Mounted() {
		return
	}
	if v.car.Modality() == carousel.ModalityTransform {
		v.token = 0
		v.dragging = false
		v.snapping = false
		v.target = -v.car.Offset()
		v.animate()
		return
	}

	switch {
	case v.token != 0:
		v.animate()
		tok := v.token
		if v.settled() {
			v.token = 0
		}
		v.car.HandleScroll(carousel.ScrollEvent{OffsetX: v.pos, HasOffset: true, Token: tok})
	case v.dragging:
		v.idle++
		if v.idle < snapFrames {
			return
		}
		v.dragging = false
		page, ok := carousel.PageAt(v.pos, float64(v.width))
		if !ok {
			return
		}
		n := len(v.car.Slides())
		page = max(0, min(page, n-1))
		v.target = float64(page * v.width)
		v.snapping = true
	case v.snapping:
		v.animate()
		if v.settled() {
			v.snapping = false
		}
		v.car.HandleScroll(carousel.UserScroll(v.pos))
	}
}

func (v *slideView) animate() {
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	if v.settled() {
		v.pos = v.target
		v.vel = 0
	}
}

func (v *slideView) settled() bool {
	return math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon
}

// animating reports whether another frame would move the strip. Under the
// transform modality the target follows the carousel offset, which can move
// between frames.
func (v *slideView) animating() bool {
	if v.car != nil && v.car.Mounted() && v.car.Modality() == carousel.ModalityTransform {
		target := -v.car.Offset()
		return math.Abs(v.pos-target) >= settleEpsilon || math.Abs(v.vel) >= settleEpsilon
	}
	return v.token != 0 || v.dragging || v.snapping || !v.settled()
}

// render draws the visible window of the strip, rows tall.
func (v *slideView) render(styles Styles, rows int) string {
	if v.width <= 0 || rows <= 0 || v.car == nil {
		return ""
	}
	slides := v.car.Slides()
	panels := make([][]string, len(slides))
	for i, locator := range slides {
		panels[i] = renderSlide(styles, i, len(slides), locator, v.width, rows)
	}

	maxX := (len(slides) - 1) * v.width
	x := max(0, min(int(math.Round(v.pos)), maxX))

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var strip strings.Builder
		for _, panel := range panels {
			strip.WriteString(panel[r])
		}
		lines[r] = ansi.Cut(strip.String(), x, x+v.width)
	}
	return strings.Join(lines, "\n")
}

// renderSlide draws one slide panel as rows lines of exactly width cells.
func renderSlide(styles Styles, i, n int, locator string, width, rows int) []string {
	label := fmt.Sprintf("image %d/%d", i+1, n)
	if locator == carousel.PlaceholderLocator {
		label = "No Image"
	}
	body := []string{label}
	if host := locatorLabel(locator); host != "" && rows > 2 {
		body = append(body, truncate(host, width-2))
	}

	block := styles.SlideStyle(i).
		Foreground(lipgloss.Color(styles.muted)).
		Width(width).
		Height(rows).
		MaxHeight(rows).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(body, "\n"))

	lines := strings.Split(block, "\n")
	for len(lines) < rows {
		lines = append(lines, styles.SlideStyle(i).Render(strings.Repeat(" ", width)))
	}
	for r, line := range lines {
		lines[r] = ansi.Truncate(line, width, "")
	}
	return lines[:rows]
}

// locatorLabel shortens an image locator to host/file for display.
func locatorLabel(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.Host == "" {
		return path.Base(locator)
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." {
		return u.Host
	}
	return u.Host + "/" + base
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
