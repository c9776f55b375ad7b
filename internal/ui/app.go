package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/showroom/internal/carousel"
	"github.com/five82/showroom/internal/config"
	"github.com/five82/showroom/internal/prefs"
	"github.com/five82/showroom/internal/state"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusCards
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    config.Config
	Platform  config.Platform
	ThemeName string
	PrefsPath string
	Logger    *zap.Logger

	// Clock drives carousel timers. Frames advance it by wall time; tests
	// may advance it directly.
	Clock    *carousel.VirtualClock
	PollTick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	config    config.Config
	prefsPath string
	pollTick  time.Duration
	logger    *zap.Logger
	keys      keyMap
	help      help.Model

	// Carousel clock
	clock     *carousel.VirtualClock
	lastFrame time.Time

	// UI state
	theme       Theme
	platform    config.Platform
	autoAdvance bool
	width       int
	height      int
	ready       bool
	showHelp    bool
	tab         Tab
	focus       focusArea

	// Data state
	snapshot state.Snapshot

	// Products tab
	category      int
	selected      int
	cards         []*productCard
	cardsViewport viewport.Model

	// Overview tab
	overview    string
	overviewKey string

	// Footer
	favourite bool
	status    string
	statusAt  time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clock := opts.Clock
	if clock == nil {
		clock = carousel.NewVirtualClock(time.Now())
	}

	platform := opts.Platform
	if platform == "" {
		platform = opts.Config.Platform
	}
	if platform == "" {
		platform = config.PlatformWeb
	}

	m := Model{
		store:       opts.Store,
		config:      opts.Config,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		logger:      logger.Named("ui"),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		clock:       clock,
		lastFrame:   clock.Now(),
		theme:       GetTheme(themeName),
		platform:    platform,
		autoAdvance: opts.Config.Carousel.AutoAdvance,
		tab:         TabProducts,
		focus:       focusCards,
		category:    -1,
	}
	if opts.Store != nil {
		m.applySnapshot(opts.Store.Snapshot())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.pollTick),
		frameCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncViewport()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.cardsViewport = viewport.New(m.cardsWidth(), m.bodyHeight())
			m.ready = true
			m.enterTab()
			return m, nil
		}
		m.cardsViewport.Width = m.cardsWidth()
		m.cardsViewport.Height = m.bodyHeight()
		m.resizeCards()
		if m.tab == TabOverview {
			m.refreshOverview()
		}
		return m, nil

	case frameMsg:
		m.handleFrame(time.Time(msg))
		return m, frameCmd()

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) bodyHeight() int {
	return max(1, m.height-headerLines-2)
}

func (m Model) renderBody() string {
	height := m.bodyHeight()
	switch m.tab {
	case TabProducts:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSidebar(height),
			m.cardsViewport.View(),
		)
	case TabOverview:
		return m.renderOverview(height)
	default:
		return m.renderPlaceholderTab(height)
	}
}

// applySnapshot stores a snapshot from the store and, when the catalog
// version moved, reconciles the mounted cards against it.
func (m *Model) applySnapshot(snap state.Snapshot) {
	previous := m.snapshot
	m.snapshot = snap
	if snap.Version == previous.Version && previous.Catalog != nil {
		return
	}
	if snap.Catalog == nil {
		return
	}

	if previous.Catalog == nil {
		m.category = categoryIndex(snap.Catalog, snap.Catalog.DefaultCategory)
		if m.ready {
			m.enterTab()
		}
		return
	}

	m.logger.Debug("catalog changed",
		zap.Uint64("version", snap.Version),
		zap.Int("products", snap.Catalog.ProductCount()))

	var previousName string
	if m.category >= 0 && m.category < len(previous.Catalog.Categories) {
		previousName = previous.Catalog.Categories[m.category].Name
	}
	if m.tab == TabProducts && m.ready {
		m.reconcileCards(previousName)
	} else if idx := categoryIndex(snap.Catalog, previousName); idx >= 0 {
		m.category = idx
	} else {
		m.category = categoryIndex(snap.Catalog, snap.Catalog.DefaultCategory)
		m.selected = 0
	}
	if m.tab == TabOverview {
		m.refreshOverview()
	}
}

// enterTab mounts whatever the current tab shows.
func (m *Model) enterTab() {
	switch m.tab {
	case TabProducts:
		m.mountCards()
	case TabOverview:
		m.refreshOverview()
	}
}

// switchTab leaves the current tab, unmounting its carousels, and enters t.
func (m *Model) switchTab(t Tab) {
	if t == m.tab {
		return
	}
	if m.tab == TabProducts {
		m.unmountCards()
	}
	m.tab = t
	m.enterTab()
}

// handleFrame advances the carousel clock by the elapsed wall time and steps
// every slide animation.
func (m *Model) handleFrame(now time.Time) {
	elapsed := now.Sub(m.lastFrame)
	m.lastFrame = now
	if elapsed > maxFrameStep {
		elapsed = maxFrameStep
	}
	if elapsed > 0 {
		m.clock.Advance(elapsed)
	}
	for _, c := range m.cards {
		c.view.step()
	}
	if m.status != "" && m.clock.Now().Sub(m.statusAt) > statusTTL {
		m.status = ""
	}
}

// syncViewport refreshes the card column and keeps the selection visible.
func (m *Model) syncViewport() {
	if !m.ready || m.tab != TabProducts {
		return
	}
	m.cardsViewport.SetContent(m.renderCards())
	if len(m.cards) == 0 {
		m.cardsViewport.GotoTop()
		return
	}
	top := m.selected * cardHeight()
	bottom := top + cardHeight()
	switch {
	case top < m.cardsViewport.YOffset:
		m.cardsViewport.SetYOffset(top)
	case bottom > m.cardsViewport.YOffset+m.cardsViewport.Height:
		m.cardsViewport.SetYOffset(bottom - m.cardsViewport.Height)
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusAt = m.clock.Now()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmountCards()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs(func(p *prefs.Prefs) { p.Theme = m.theme.Name })
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(Tab((int(m.tab) + 1) % len(tabNames)))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(Tab((int(m.tab) + len(tabNames) - 1) % len(tabNames)))
		return m, nil

	case key.Matches(msg, m.keys.Platform):
		m.togglePlatform()
		return m, nil

	case key.Matches(msg, m.keys.AutoAdvance):
		m.toggleAutoAdvance()
		return m, nil

	case key.Matches(msg, m.keys.Favourite):
		m.favourite = !m.favourite
		return m, nil

	case key.Matches(msg, m.keys.Contact):
		if cat := m.snapshot.Catalog; cat != nil {
			m.setStatus("Contact request sent to %s", cat.Company.Name)
		}
		return m, nil
	}

	if m.tab == TabProducts {
		return m.handleProductsKey(msg)
	}
	return m, nil
}

// handleProductsKey processes keyboard input for the products tab.
func (m Model) handleProductsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusSidebar {
			m.focus = focusCards
		} else {
			m.focus = focusSidebar
		}

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Left):
		m.navigate(carousel.Backward)

	case key.Matches(msg, m.keys.Right):
		m.navigate(carousel.Forward)

	case key.Matches(msg, m.keys.ArrowPrev):
		if c := m.selectedCard(); c != nil {
			c.car.TapArrow(carousel.Backward)
		}

	case key.Matches(msg, m.keys.ArrowNext):
		if c := m.selectedCard(); c != nil {
			c.car.TapArrow(carousel.Forward)
		}

	case key.Matches(msg, m.keys.Indicator):
		n, err := strconv.Atoi(msg.String())
		if c := m.selectedCard(); c != nil && err == nil {
			c.car.TapIndicator(n - 1)
		}

	case key.Matches(msg, m.keys.Details):
		if c := m.selectedCard(); c != nil {
			m.setStatus("%s: %s, %s", c.product.Name, c.product.Origin, c.product.Grade)
		}
	}
	return m, nil
}

// handleMouse maps the wheel onto the product list and horizontal swipes.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.tab != TabProducts || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveSelection(-1)
	case tea.MouseButtonWheelDown:
		m.moveSelection(1)
	case tea.MouseButtonWheelLeft:
		if c := m.selectedCard(); c != nil {
			c.view.drag(carousel.Backward)
		}
	case tea.MouseButtonWheelRight:
		if c := m.selectedCard(); c != nil {
			c.view.drag(carousel.Forward)
		}
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if m.focus == focusSidebar {
		m.selectCategory(m.category + delta)
		return
	}
	if len(m.cards) == 0 {
		return
	}
	m.selected = max(0, min(m.selected+delta, len(m.cards)-1))
}

// navigate moves the selected carousel. Web taps the arrows; native drags
// the strip like a swipe.
func (m *Model) navigate(d carousel.Direction) {
	c := m.selectedCard()
	if c == nil {
		return
	}
	if m.platform == config.PlatformNative {
		c.view.drag(d)
		return
	}
	c.car.TapArrow(d)
}

// togglePlatform switches every mounted carousel between modalities.
func (m *Model) togglePlatform() {
	m.platform = m.platform.Toggle()
	for _, c := range m.cards {
		c.car.SetModality(m.platform.Modality())
		c.view.sync()
	}
	m.savePrefs(func(p *prefs.Prefs) { p.Platform = m.platform })
	m.logger.Info("platform switched", zap.String("platform", string(m.platform)))
	m.setStatus("Platform: %s", m.platform)
}

func (m *Model) toggleAutoAdvance() {
	m.autoAdvance = !m.autoAdvance
	width := m.slideWidth()
	for _, c := range m.cards {
		c.car.SetOptions(m.carouselOptions(width))
	}
	m.setStatus("Auto-advance %s", ternary(m.autoAdvance, "on", "off"))
}

func (m Model) savePrefs(mutate func(*prefs.Prefs)) {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Update(m.prefsPath, mutate); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// Messages

type tickMsg time.Time

type frameMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program. It returns nil when the context is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.unmountCards()
	}
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
