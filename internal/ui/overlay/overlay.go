// Package overlay implements the full-screen search overlay: a
// debounced query input, a dual-endpoint fetch dispatcher, and a
// navigable result list.
package overlay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/axitpadasala108/roven-global/internal/catalog"
	"github.com/axitpadasala108/roven-global/internal/domain"
	"github.com/axitpadasala108/roven-global/internal/eventbus"
)

// searchFailedMessage is the single user-visible failure text. Any
// failure from either lookup collapses into it.
const searchFailedMessage = "Search failed."

// Navigator performs an imperative route change.
type Navigator interface {
	Navigate(path string)
}

// CloseSignal dismisses the overlay. It is supplied by the owner and
// invoked on escape and on result selection.
type CloseSignal func()

// Options configure the overlay.
type Options struct {
	Debounce   time.Duration // idle delay before a fetch cycle; 350ms if zero
	Limit      int           // product result cap; 10 if zero
	ShowBrands bool          // append the brand to product rows
}

// debounceMsg fires when the idle timer elapses. Only a message whose
// id matches the current timer generation triggers a fetch.
type debounceMsg struct {
	id uint64
}

// resultMsg carries the outcome of one fetch cycle back to the overlay.
type resultMsg struct {
	seq     uint64
	results domain.ResultSet
	err     error
}

// rowKind distinguishes the two result groups.
type rowKind int

const (
	rowCategory rowKind = iota
	rowProduct
)

// row is one selectable result line.
type row struct {
	kind  rowKind
	label string
	path  string
}

// Overlay is the search overlay component. It is owned by the UI model
// and only receives messages while open.
type Overlay struct {
	searcher catalog.Searcher
	nav      Navigator
	close    CloseSignal
	bus      eventbus.EventBus

	input textinput.Model
	spin  spinner.Model

	open      bool
	loading   bool
	errText   string
	results   domain.ResultSet
	selection int

	debounce   time.Duration
	limit      int
	showBrands bool

	// debounceID tracks the latest armed timer; a tick carrying an
	// older id is ignored, so at most one pending timer is live.
	debounceID uint64

	// fetchSeq tags fetch cycles; a completion carrying an older seq
	// is a stale response and is discarded.
	fetchSeq uint64

	width  int
	height int
}

// New creates a search overlay. The searcher, navigator and close
// signal are required collaborators.
func New(searcher catalog.Searcher, nav Navigator, closeSignal CloseSignal, bus eventbus.EventBus, opts Options) *Overlay {
	ti := textinput.New()
	ti.Placeholder = "Search categories and products..."
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	if opts.Debounce <= 0 {
		opts.Debounce = 350 * time.Millisecond
	}
	if opts.Limit <= 0 {
		opts.Limit = 10
	}

	return &Overlay{
		searcher:   searcher,
		nav:        nav,
		close:      closeSignal,
		bus:        bus,
		input:      ti,
		spin:       sp,
		debounce:   opts.Debounce,
		limit:      opts.Limit,
		showBrands: opts.ShowBrands,
	}
}

// IsOpen reports whether the overlay is currently shown.
func (o *Overlay) IsOpen() bool {
	return o.open
}

// Query returns the current query text.
func (o *Overlay) Query() string {
	return o.input.Value()
}

// Results returns the result set of the current fetch cycle.
func (o *Overlay) Results() domain.ResultSet {
	return o.results
}

// Open shows the overlay and focuses the input.
func (o *Overlay) Open() tea.Cmd {
	o.open = true
	o.input.Reset()
	o.input.Focus()
	return textinput.Blink
}

// Close hides the overlay and resets query, results and error. Pending
// timers and in-flight responses are invalidated by bumping both
// generation counters.
func (o *Overlay) Close() {
	o.open = false
	o.input.Blur()
	o.input.Reset()
	o.results = domain.ResultSet{}
	o.errText = ""
	o.loading = false
	o.selection = 0
	o.debounceID++
	o.fetchSeq++
}

// SetSize updates the drawing area.
func (o *Overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = width - 8
}

// Update processes a message. The owner forwards messages only while
// the overlay is open; stale timer and fetch messages arriving after a
// close are discarded by the generation counters regardless.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return o.handleKey(msg)

	case debounceMsg:
		if msg.id != o.debounceID {
			return nil // superseded timer
		}
		return o.startFetch()

	case resultMsg:
		o.handleResult(msg)
		return nil

	case spinner.TickMsg:
		if !o.loading {
			return nil
		}
		var cmd tea.Cmd
		o.spin, cmd = o.spin.Update(msg)
		return cmd
	}

	return nil
}

// handleKey processes keyboard input while the overlay is open.
func (o *Overlay) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		o.close()
		return nil

	case "up":
		if o.selection > 0 {
			o.selection--
		}
		return nil

	case "down":
		if o.selection < len(o.rows())-1 {
			o.selection++
		}
		return nil

	case "enter":
		rows := o.rows()
		if o.selection >= 0 && o.selection < len(rows) {
			path := rows[o.selection].path
			// Close first, then navigate. Both always happen.
			o.close()
			o.nav.Navigate(path)
		}
		return nil
	}

	before := o.input.Value()
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	if o.input.Value() != before {
		return tea.Batch(cmd, o.onQueryChanged())
	}
	return cmd
}

// onQueryChanged re-arms the debounce timer for the mutated query. An
// empty (or whitespace-only) query short-circuits: results and error
// are cleared immediately and no request is made.
func (o *Overlay) onQueryChanged() tea.Cmd {
	o.debounceID++
	o.selection = 0

	query := strings.TrimSpace(o.input.Value())
	if query == "" {
		o.results = domain.ResultSet{}
		o.errText = ""
		o.loading = false
		return nil
	}

	o.loading = true
	o.errText = ""

	id := o.debounceID
	return tea.Batch(
		o.spin.Tick,
		tea.Tick(o.debounce, func(time.Time) tea.Msg {
			return debounceMsg{id: id}
		}),
	)
}

// startFetch issues one fetch cycle for the settled query.
func (o *Overlay) startFetch() tea.Cmd {
	o.fetchSeq++
	seq := o.fetchSeq
	query := strings.TrimSpace(o.input.Value())
	limit := o.limit
	searcher := o.searcher

	return func() tea.Msg {
		results, err := searcher.Search(context.Background(), query, limit)
		return resultMsg{seq: seq, results: results, err: err}
	}
}

// handleResult applies a completed fetch cycle to the overlay state.
func (o *Overlay) handleResult(msg resultMsg) {
	if msg.seq != o.fetchSeq {
		return // stale response from a superseded query
	}

	// The spinner stops on every completion path.
	o.loading = false

	if msg.err != nil {
		// Previous results stay visible beside the error banner.
		o.errText = searchFailedMessage
		return
	}

	o.errText = ""
	o.results = msg.results
	if o.selection >= o.results.Len() {
		o.selection = 0
	}

	if o.bus != nil {
		o.bus.Publish(eventbus.SearchCompletedEvent{
			Query:         strings.TrimSpace(o.input.Value()),
			CategoryCount: len(o.results.Categories),
			ProductCount:  len(o.results.Products),
		})
	}
}

// rows flattens the result set into the selectable list: categories
// first, then products.
func (o *Overlay) rows() []row {
	rows := make([]row, 0, o.results.Len())
	for _, c := range o.results.Categories {
		rows = append(rows, row{
			kind:  rowCategory,
			label: c.Name,
			path:  "/category/" + c.Slug,
		})
	}
	for _, p := range o.results.Products {
		label := p.Name
		if o.showBrands && p.Brand != "" {
			label = fmt.Sprintf("%s · %s", p.Name, p.Brand)
		}
		rows = append(rows, row{
			kind:  rowProduct,
			label: label,
			path:  "/product/" + p.Slug,
		})
	}
	return rows
}

// --- View rendering ---

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	groupStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	selectedRow  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalRow    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// View renders the overlay. The result area is a function of the
// query, loading flag, error text and result set.
func (o *Overlay) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("> "))
	b.WriteString(o.input.View())
	b.WriteString("\n")

	if body := o.viewResults(); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select · enter open · esc close"))
	return b.String()
}

// viewResults renders the result area for the current request state.
func (o *Overlay) viewResults() string {
	query := strings.TrimSpace(o.input.Value())
	if query == "" {
		return ""
	}

	if o.loading {
		return o.spin.View() + dimStyle.Render(" Searching...")
	}

	if o.errText != "" {
		return errorStyle.Render(o.errText)
	}

	if o.results.IsEmpty() {
		return dimStyle.Render(fmt.Sprintf("No results for %q", query))
	}

	var b strings.Builder
	rows := o.rows()
	idx := 0

	if len(o.results.Categories) > 0 {
		b.WriteString(groupStyle.Render("Categories"))
		b.WriteString("\n")
		for range o.results.Categories {
			b.WriteString(o.renderRow(rows[idx], idx))
			b.WriteString("\n")
			idx++
		}
	}

	if len(o.results.Products) > 0 {
		b.WriteString(groupStyle.Render("Products"))
		b.WriteString("\n")
		for range o.results.Products {
			b.WriteString(o.renderRow(rows[idx], idx))
			b.WriteString("\n")
			idx++
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderRow draws one result line with a selection marker.
func (o *Overlay) renderRow(r row, idx int) string {
	if idx == o.selection {
		return selectedRow.Render("> " + r.label)
	}
	return normalRow.Render("  " + r.label)
}
