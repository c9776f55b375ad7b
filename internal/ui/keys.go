package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Focus      key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Carousel
	Left      key.Binding
	Right     key.Binding
	ArrowPrev key.Binding
	ArrowNext key.Binding
	Indicator key.Binding

	// Screen toggles
	Platform    key.Binding
	AutoAdvance key.Binding
	Favourite   key.Binding
	Contact     key.Binding
	Details     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Sidebar/cards"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous tab"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),

		// Carousel
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous image (drag on native)"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next image (drag on native)"),
		),
		ArrowPrev: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "Tap previous arrow"),
		),
		ArrowNext: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "Tap next arrow"),
		),
		Indicator: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Tap indicator"),
		),

		// Screen toggles
		Platform: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Toggle web/native"),
		),
		AutoAdvance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle auto-advance"),
		),
		Favourite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Favourite"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Contact"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "View details"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Left, k.Right, k.Platform, k.AutoAdvance, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.PrevTab, k.NextTab, k.Focus, k.Up, k.Down},
		// Carousel
		{k.Left, k.Right, k.ArrowPrev, k.ArrowNext, k.Indicator},
		// Screen
		{k.Platform, k.AutoAdvance, k.Details, k.Favourite, k.Contact},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
