package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/catalog"
)

var categoryGlyphs = map[string]string{
	"dryspices": "✿",
	"seeds":     "◉",
	"herbs":     "❦",
	"dried":     "◆",
	"pulses":    "◍",
	"cereals":   "≋",
	"organic":   "❀",
}

func categoryGlyph(icon string) string {
	if g, ok := categoryGlyphs[strings.ToLower(icon)]; ok {
		return g
	}
	return "•"
}

func (m Model) sidebarWidth() int {
	if m.width < LayoutCompactWidth {
		return sidebarCompactWidth
	}
	return sidebarWidth
}

func (m Model) currentCategory() (catalog.Category, bool) {
	cat := m.snapshot.Catalog
	if cat == nil || m.category < 0 || m.category >= len(cat.Categories) {
		return catalog.Category{}, false
	}
	return cat.Categories[m.category], true
}

// selectCategory switches the sidebar selection and remounts the cards.
func (m *Model) selectCategory(i int) {
	cat := m.snapshot.Catalog
	if cat == nil || i < 0 || i >= len(cat.Categories) || i == m.category {
		return
	}
	m.category = i
	m.selected = 0
	m.mountCards()
}

// renderSidebar renders the category list.
func (m Model) renderSidebar(height int) string {
	styles := m.theme.Styles()
	width := m.sidebarWidth()
	bg := NewBgStyle(m.theme.Surface)

	var rows []string
	rows = append(rows, bg.FillLine(bg.Render("Categories", styles.MutedText.Bold(true)), width))
	if cat := m.snapshot.Catalog; cat != nil {
		for i, c := range cat.Categories {
			label := fmt.Sprintf("%s %s", categoryGlyph(c.Icon), c.Name)
			count := fmt.Sprintf("%d", len(c.Products))
			label = padRight(truncate(label, width-len(count)-3), width-len(count)-2) + count
			switch {
			case i == m.category && m.focus == focusSidebar:
				rows = append(rows, styles.Selected.Width(width).Render(" "+label))
			case i == m.category:
				rows = append(rows, bg.FillLine(bg.Render(" "+label, styles.SuccessText), width))
			default:
				rows = append(rows, bg.FillLine(bg.Render(" "+label, styles.Text), width))
			}
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(rows, "\n"))
}
