package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// refreshOverview re-renders the company overview markdown when the width or
// catalog version changed since the last render.
func (m *Model) refreshOverview() {
	cat := m.snapshot.Catalog
	if cat == nil || m.width <= 0 {
		return
	}
	key := fmt.Sprintf("%d/%d", m.snapshot.Version, m.width)
	if key == m.overviewKey {
		return
	}
	m.overviewKey = key

	source := strings.TrimSpace(cat.Company.Overview)
	if source == "" {
		source = fmt.Sprintf("## %s\n\nNo overview provided.", cat.Company.Name)
	}
	out, err := renderMarkdown(source, max(20, m.width-4))
	if err != nil {
		m.logger.Warn("render overview failed", zap.Error(err))
		m.overview = source
		return
	}
	m.overview = out
}

func renderMarkdown(source string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// renderPlaceholderTab is shown for tabs without content.
func (m Model) renderPlaceholderTab(height int) string {
	styles := m.theme.Styles()
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		styles.MutedText.Render(m.tab.String()+" content coming soon"))
}

func (m Model) renderOverview(height int) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(m.overview)
}
