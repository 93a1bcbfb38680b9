package state

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/errors"
	"github.com/cristianoliveira/barangay-directory/internal/logging"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/tui/render"
)

const (
	statusTTL       = 5 * time.Second
	searchCharLimit = 64
)

// Browser is the part of the directory controller the model drives.
type Browser interface {
	Search(text string) error
	NavigatePage(d directory.Direction) error
	SelectSlot(ctx context.Context, slot int) error
	Update(ctx context.Context, id string, r resident.Resident) error
	Delete(ctx context.Context) error
	Reload(ctx context.Context) error
	State() directory.State
	Snapshot() directory.Snapshot
}

// Model represents the TUI model for bubbletea. It is also the presenter
// the directory controller pushes snapshots to.
type Model struct {
	ctx          context.Context
	browser      Browser
	snapshot     directory.Snapshot
	cursor       int // slot on the current page
	input        textinput.Model
	searchMode   bool
	confirming   bool
	editing      *editForm
	errorHandler *errors.TUIHandler
	suggestions  int
	width        int
	height       int
	now          func() time.Time
	log          logging.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithSuggestions sets how many close names to offer when a search matches nothing.
func WithSuggestions(n int) Option {
	return func(m *Model) {
		if n >= 0 {
			m.suggestions = n
		}
	}
}

// WithClock sets the time source used for ages in the detail pane.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// NewModel creates a model with no browser attached. Build the controller
// with directory.WithPresenter(m), then call Attach.
func NewModel(ctx context.Context, opts ...Option) *Model {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "last name, first name..."
	input.CharLimit = searchCharLimit

	m := &Model{
		ctx:         ctx,
		input:       input,
		suggestions: 3,
		now:         time.Now,
		log:         logging.Component("tui"),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.log.Debug("status", "type", msg.Type.String(), "text", msg.Text)
	})
	return m
}

// Attach connects the controller and shows its current snapshot.
func (m *Model) Attach(b Browser) {
	m.browser = b
	m.Present(b.Snapshot())
}

// Present implements directory.Presenter.
func (m *Model) Present(s directory.Snapshot) {
	moved := s.Page.Number != m.snapshot.Page.Number ||
		s.Keywords.String() != m.snapshot.Keywords.String()
	m.snapshot = s

	switch {
	case s.Selection.Active():
		m.cursor = s.Selection.Slot
	case moved:
		m.cursor = 0
	}
	m.clampCursor()
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case statusExpiredMsg:
		return m, nil
	}

	if m.editing != nil {
		return m, m.editing.Update(msg)
	}
	if m.searchMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the page, the selected resident and the status line.
func (m *Model) View() string {
	if m.browser == nil {
		return "Loading residents...\n"
	}
	s := m.snapshot

	parts := []string{
		render.Header(render.HeaderState{
			Page:     s.Page.Number,
			Count:    s.Page.Count,
			Total:    s.Total,
			Matches:  s.Matches,
			Keywords: s.Keywords.String(),
		}),
		"",
	}

	grid := render.Grid(render.GridState{
		Page:     s.Page,
		Cursor:   m.cursor,
		Selected: s.Selection.Slot,
	})
	parts = append(parts, render.Body(grid, render.Detail(s.Record, m.now()), m.width), "")

	if msg, ok := m.errorHandler.Current(statusTTL); ok {
		parts = append(parts, render.Status(msg))
	}

	if m.editing != nil {
		parts = append(parts, m.editing.View())
	}

	parts = append(parts, render.Footer(render.FooterState{
		Editing:     m.editing != nil,
		SearchMode:  m.searchMode,
		SearchView:  m.input.View(),
		Confirming:  m.confirming,
		HasSelected: s.Selection.Active(),
		Filtered:    !s.Keywords.IsEmpty(),
	}))
	return strings.Join(parts, "\n")
}

// Cursor returns the slot under the cursor.
func (m *Model) Cursor() int {
	return m.cursor
}

// Warn shows msg as a warning on the status line. Hook failures arrive
// here while the alternate screen owns the terminal.
func (m *Model) Warn(msg string) {
	m.errorHandler.Warning(msg)
}

// Messages returns the status messages shown so far, oldest first.
func (m *Model) Messages() []errors.Message {
	return m.errorHandler.History()
}

func (m *Model) clampCursor() {
	filled := m.snapshot.Page.Filled()
	switch {
	case filled == 0 || m.cursor < 0:
		m.cursor = 0
	case m.cursor >= filled:
		m.cursor = filled - 1
	}
}

// report shows err on the status line. A nil err shows nothing.
func (m *Model) report(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	errors.Report(m.errorHandler, err)
	return statusExpiredAfter(statusTTL)
}
