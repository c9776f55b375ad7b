package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/showroom/internal/carousel"
	"github.com/five82/showroom/internal/catalog"
	"github.com/five82/showroom/internal/config"
)

// productCard pairs a product with its mounted carousel and strip view.
type productCard struct {
	product catalog.Product
	car     *carousel.Carousel
	view    *slideView
}

// mountCard mounts a carousel for p. The view is the carousel's scroller.
func (m *Model) mountCard(p catalog.Product, slideWidth int) *productCard {
	view := newSlideView(slideWidth)
	car := carousel.Mount(
		carousel.SlideSet(p.Images),
		m.carouselOptions(slideWidth),
		m.platform.Modality(),
		carousel.WithClock(m.clock),
		carousel.WithScroller(view),
		carousel.WithLogger(m.logger.With(zap.String("product", p.ID))),
	)
	view.car = car
	return &productCard{product: p, car: car, view: view}
}

// mountCards replaces the visible cards with the current category's products.
func (m *Model) mountCards() {
	m.unmountCards()
	category, ok := m.currentCategory()
	if !ok {
		return
	}
	width := m.slideWidth()
	for _, p := range category.Products {
		m.cards = append(m.cards, m.mountCard(p, width))
	}
	m.selected = max(0, min(m.selected, len(m.cards)-1))
}

// unmountCards stops every carousel on screen.
func (m *Model) unmountCards() {
	for _, c := range m.cards {
		c.car.Unmount()
	}
	m.cards = nil
}

// reconcileCards applies a reloaded catalog to the mounted cards. Products
// that survived keep their carousel and get the new image set.
func (m *Model) reconcileCards(previousCategory string) {
	cat := m.snapshot.Catalog
	if cat == nil {
		m.unmountCards()
		return
	}
	idx := categoryIndex(cat, previousCategory)
	if idx < 0 {
		m.category = categoryIndex(cat, cat.DefaultCategory)
		m.selected = 0
		m.mountCards()
		return
	}
	m.category = idx

	existing := make(map[string]*productCard, len(m.cards))
	for _, c := range m.cards {
		existing[c.product.ID] = c
	}
	width := m.slideWidth()
	cards := make([]*productCard, 0, len(cat.Categories[idx].Products))
	for _, p := range cat.Categories[idx].Products {
		if c, ok := existing[p.ID]; ok {
			delete(existing, p.ID)
			c.product = p
			c.car.SetSlides(carousel.SlideSet(p.Images))
			cards = append(cards, c)
			continue
		}
		cards = append(cards, m.mountCard(p, width))
	}
	for _, c := range existing {
		c.car.Unmount()
	}
	m.cards = cards
	m.selected = max(0, min(m.selected, len(m.cards)-1))
}

// resizeCards pushes a new slide width into every card.
func (m *Model) resizeCards() {
	width := m.slideWidth()
	for _, c := range m.cards {
		c.view.resize(width)
		c.car.SetOptions(m.carouselOptions(width))
	}
}

func (m Model) carouselOptions(slideWidth int) carousel.Options {
	settings := m.config.Carousel
	settings.AutoAdvance = m.autoAdvance
	return settings.Options(float64(slideWidth))
}

func (m Model) selectedCard() *productCard {
	if m.selected < 0 || m.selected >= len(m.cards) {
		return nil
	}
	return m.cards[m.selected]
}

func (m Model) cardsWidth() int {
	return max(0, m.width-m.sidebarWidth())
}

// slideWidth is the strip width inside a card: column minus border, padding
// and the two arrow gutters.
func (m Model) slideWidth() int {
	return max(minSlideWidth, m.cardsWidth()-4-2*arrowGutter)
}

func categoryIndex(cat *catalog.Catalog, name string) int {
	if cat == nil {
		return -1
	}
	for i, c := range cat.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// renderCards renders the card column for the viewport.
func (m Model) renderCards() string {
	styles := m.theme.Styles()
	width := m.cardsWidth()
	if len(m.cards) == 0 {
		return lipgloss.Place(width, max(1, m.bodyHeight()), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No products available in this category"))
	}
	rendered := make([]string, len(m.cards))
	for i, c := range m.cards {
		rendered[i] = m.renderCard(c, width, m.focus == focusCards && i == m.selected)
	}
	return strings.Join(rendered, "\n")
}

// renderCard draws one product card exactly cardHeight() rows tall.
func (m Model) renderCard(c *productCard, width int, focused bool) string {
	styles := m.theme.Styles()
	native := m.platform == config.PlatformNative
	inner := max(1, width-4)

	strip := strings.Split(c.view.render(styles, slideRows), "\n")
	gutter := strings.Repeat(" ", arrowGutter)
	for r := range strip {
		left, right := gutter, gutter
		if r == slideRows/2 && c.car.ShowArrows() {
			left = styles.Arrow.Render("‹") + " "
			right = " " + styles.Arrow.Render("›")
		}
		strip[r] = left + strip[r] + right
	}

	var indicators string
	if c.car.ShowIndicators() {
		dots := make([]string, 0, len(c.car.Slides()))
		for _, ind := range c.car.Indicators() {
			if ind.Active {
				dots = append(dots, styles.IndicatorActive.Render("●"))
			} else {
				dots = append(dots, styles.Indicator.Render("○"))
			}
		}
		indicators = strings.Join(dots, " ")
	}
	indicators = lipgloss.PlaceHorizontal(inner, lipgloss.Center, indicators)

	p := c.product
	packaging := ternary(native, "Packaging Type", "Packaging")
	detail := func(label, value string) string {
		return styles.MutedText.Render(label+": ") + styles.Text.Render(truncate(value, inner-len(label)-2))
	}

	lines := append(strip,
		indicators,
		styles.Text.Bold(true).Render(truncate(p.Name, inner)),
		detail("Origin", p.Origin),
		detail("Grade", p.Grade),
		detail(packaging, p.PackagingType),
		styles.Button.Render(ternary(native, "View All Details", "View Details")+" ›"),
	)

	style := styles.Card
	if focused {
		style = styles.CardFocused
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// cardSummary is the footer text for the selected card.
func (m Model) cardSummary() string {
	c := m.selectedCard()
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s %d/%d", c.product.Name, c.car.Index()+1, len(c.car.Slides()))
}
