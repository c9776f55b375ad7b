package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/config"
)

// headerLines is the height of renderHeader.
const headerLines = 2

// renderHeader renders the company header: name and badges, then stats.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	line := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface)).Width(m.width)

	cat := m.snapshot.Catalog
	if cat == nil {
		return line.Render(bg.Render("‹ Loading catalog...", styles.WarningText)) + "\n" + line.Render("")
	}
	company := cat.Company

	var title []string
	title = append(title, bg.Render("‹", styles.MutedText), bg.Render(company.Name, styles.Text.Bold(true)))
	if company.Pro {
		title = append(title, styles.Badge.Render("PRO"))
	}
	if company.Verified {
		title = append(title, bg.Render("✓ verified", styles.SuccessText))
	}
	left := bg.Join(title, " ")

	var right []string
	right = append(right, bg.Render(string(m.platform), styles.AccentText))
	if m.autoAdvance {
		right = append(right, bg.Render("auto", styles.SuccessText))
	}
	right = append(right, bg.Render(m.theme.Name, styles.FaintText))
	rightText := bg.Join(right, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(rightText) - 2
	first := left + bg.Spaces(max(1, gap)) + rightText

	stats := bg.Render(joinNonEmpty(" • ", company.Revenue, company.Employees, company.Experience), styles.MutedText)
	if m.snapshot.IsStale() && m.snapshot.LastError != nil {
		maxErr := max(20, m.width-lipgloss.Width(stats)-20)
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		stats += bg.Spaces(2) + bg.Pair("RELOAD FAILED", errText, styles.DangerText, styles.DangerText)
	}

	return line.Render(" "+first) + "\n" + line.Render(" "+stats)
}

// Tab is a section of the company screen.
type Tab int

const (
	TabOverview Tab = iota
	TabProducts
	TabPosts
	TabCertificates
	TabRepresentative
)

var tabNames = []string{"Overview", "Products", "Posts", "Certificates", "Representative"}

func (t Tab) String() string {
	if int(t) < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// renderTabs renders the tab bar.
func (m Model) renderTabs() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			parts[i] = styles.TabActive.Render(name)
		} else {
			parts[i] = styles.Tab.Render(name)
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(strings.Join(parts, ""))
}

// renderFooter renders the favourite and contact actions with key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	heart := bg.Render("♡", styles.MutedText)
	if m.favourite {
		heart = bg.Render("♥", styles.DangerText)
	}
	contact := styles.Button.Render(ternary(m.platform == config.PlatformNative, "Contact", "Contact Company"))
	actions := heart + bg.Spaces(2) + contact

	var info string
	switch {
	case m.status != "":
		info = bg.Render(m.status, styles.WarningText)
	case m.tab == TabProducts && m.selectedCard() != nil:
		info = bg.Render(m.cardSummary(), styles.MutedText)
	}

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(actions) - lipgloss.Width(info) - lipgloss.Width(hints) - 6
	if gap < 1 {
		hints = ""
		gap = max(1, m.width-lipgloss.Width(actions)-lipgloss.Width(info)-4)
	}
	content := actions + bg.Spaces(2) + info + bg.Spaces(gap) + hints
	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
}
