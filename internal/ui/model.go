package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/axitpadasala108/roven-global/internal/catalog"
	"github.com/axitpadasala108/roven-global/internal/config"
	"github.com/axitpadasala108/roven-global/internal/eventbus"
	"github.com/axitpadasala108/roven-global/internal/ui/overlay"
	"github.com/axitpadasala108/roven-global/internal/ui/router"
	"github.com/axitpadasala108/roven-global/internal/ui/views"
)

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	width  int
	height int
	status string

	router   *router.Router
	overlay  *overlay.Overlay
	renderer *views.Renderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, searcher catalog.Searcher) *Model {
	m := &Model{
		bus:      bus,
		config:   cfg,
		router:   router.New(bus),
		renderer: views.NewRenderer(),
	}

	m.overlay = overlay.New(searcher, m.router, func() { m.overlay.Close() }, bus, overlay.Options{
		Debounce:   time.Duration(cfg.SearchDebounceMS) * time.Millisecond,
		Limit:      cfg.SearchLimit,
		ShowBrands: cfg.UI.ShowBrands,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Router exposes the navigation state, mainly for tests.
func (m *Model) Router() *router.Router {
	return m.router
}

// Overlay exposes the search overlay, mainly for tests.
func (m *Model) Overlay() *overlay.Overlay {
	return m.overlay
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.overlay.IsOpen() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, m.overlay.Update(msg)
		}
		return m.handleKey(msg)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.status = "Could not open help: " + msg.err.Error()
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil
	}

	// Debounce ticks, fetch results and spinner frames belong to the
	// overlay; its generation counters discard anything stale.
	return m, m.overlay.Update(msg)
}

// handleKey processes keyboard input on the main screens.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/", "ctrl+k":
		return m, m.overlay.Open()

	case "esc":
		m.router.Back()
		return m, nil

	case "?":
		return m, m.showHelpPager()

	case "enter":
		// On a detail screen, page the full text with ov.
		if m.router.Current().Screen != router.ScreenHome {
			return m, m.showDetailPager()
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.overlay.IsOpen() {
		// The overlay replaces the whole screen while open.
		return m.renderer.Frame(m.overlay.View(), "")
	}

	body := m.renderer.RenderScreen(m.router.Current())
	footer := "/ search · ? help · q quit"
	if m.status != "" {
		footer = m.status
	}
	return m.renderer.Frame(body, footer)
}

// clearStatusAfter schedules the status line to be wiped.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
