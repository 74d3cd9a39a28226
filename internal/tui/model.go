package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

// Mouse zone IDs.
const (
	zoneMenu    = "menu"
	zoneClose   = "close"
	zoneOverlay = "overlay"
)

// SidebarState holds the off-canvas navigation state.
type SidebarState struct {
	state dashboard.ViewState
}

// NavigationState holds deck focus and hover state.
type NavigationState struct {
	decks         []Deck
	activeDeckIdx int
	hoverIdx      []int // per deck, -1 when no mark is hovered
}

// Options configures a DashboardModel.
type Options struct {
	Skin               skin.Skin
	ReverseScrollWheel bool
	Logger             *zap.Logger
}

// DashboardModel represents the main TUI model.
// Sub-state is organized into embedded structs for readability.
type DashboardModel struct {
	SidebarState
	NavigationState
	ModalStackState

	catalog model.CatalogReader
	page    dashboard.Page

	styles  Styles
	keys    KeyMap
	zones   *zone.Manager
	content viewport.Model
	logger  *zap.Logger

	width              int
	height             int
	reverseScrollWheel bool
}

// NewDashboardModel creates a dashboard over a catalog. The sidebar starts
// closed.
func NewDashboardModel(cat model.CatalogReader, opts Options) *DashboardModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Skin.Name == "" {
		opts.Skin = skin.Default()
	}

	m := &DashboardModel{
		NavigationState: NavigationState{
			activeDeckIdx: 0,
		},
		catalog:            cat,
		styles:             NewStyles(opts.Skin),
		keys:               DefaultKeyMap(),
		zones:              zone.New(),
		content:            viewport.New(0, 0),
		logger:             logger,
		reverseScrollWheel: opts.ReverseScrollWheel,
	}
	m.compose()
	return m
}

// compose rebuilds the page and its decks from the catalog and the current
// view state.
func (m *DashboardModel) compose() {
	m.page = dashboard.Compose(m.catalog, m.state)

	panels := m.page.Panels()
	decks := make([]Deck, 0, len(panels))
	for _, p := range panels {
		if d := newDeck(p); d != nil {
			decks = append(decks, d)
		}
	}
	m.decks = decks

	if len(m.hoverIdx) != len(decks) {
		m.hoverIdx = make([]int, len(decks))
		m.clearHover()
	}
	if m.activeDeckIdx >= len(decks) {
		m.activeDeckIdx = 0
	}
}

// apply activates a sidebar control and re-composes the page when the view
// state changes.
func (m *DashboardModel) apply(a dashboard.Action) {
	prev := m.state
	m.state = m.state.Apply(a)
	if m.state == prev {
		return
	}
	m.compose()
	if m.state.SidebarOpen {
		m.clearHover()
	}
	m.logger.Debug("sidebar toggled",
		zap.Stringer("action", a),
		zap.Stringer("state", m.state),
	)
}

func (m *DashboardModel) clearHover() {
	for i := range m.hoverIdx {
		m.hoverIdx[i] = -1
	}
}

// State returns the current view state.
func (m *DashboardModel) State() dashboard.ViewState {
	return m.state
}

// Page returns the composed page for the current state.
func (m *DashboardModel) Page() dashboard.Page {
	return m.page
}

// Close releases the mouse zone manager.
func (m *DashboardModel) Close() {
	m.zones.Close()
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) viewContext() ViewContext {
	return ViewContext{
		ContentWidth: m.width,
		PlotRows:     model.PlotHeightRows,
		Styles:       &m.styles,
	}
}

func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{
		ReverseScrollWheel: m.reverseScrollWheel,
		Styles:             &m.styles,
	}
}

// inZone reports whether a mouse event falls inside a marked zone.
func (m *DashboardModel) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}
