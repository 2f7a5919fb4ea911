package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tzboard/internal/state"
)

// editMode is what the text input is currently editing, if anything.
type editMode int

const (
	editNone editMode = iota
	editClock
	editTitle
	editZone
)

const defaultRefresh = time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	// Refresh is how often the header clocks are redrawn.
	Refresh time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	store   *state.Store
	refresh time.Duration

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	board    state.Board
	selected int

	// Editing state
	mode   editMode
	editID int
	input  textinput.Model

	// Status line
	status      string
	statusError bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64

	m := Model{
		ctx:     ctx,
		store:   opts.Store,
		refresh: refresh,
		theme:   GetTheme(opts.ThemeName),
		input:   input,
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return refreshCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case TickMsg:
		m.store.OnPeriodicTick(time.Time(msg))
		m.reload()
		return m, nil

	case refreshMsg:
		m.reload()
		return m, refreshCmd(m.refresh)
	}

	if m.mode != editNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
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
	return m.renderMain()
}

// Board returns the read model the view was last rendered from.
func (m Model) Board() state.Board {
	return m.board
}

// reload re-derives the board and keeps the selection in range.
func (m *Model) reload() {
	if m.store == nil {
		return
	}
	m.board = m.store.Board()
	if m.selected >= len(m.board.Views) {
		m.selected = len(m.board.Views) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) selectedView() (state.View, bool) {
	if m.selected < 0 || m.selected >= len(m.board.Views) {
		return state.View{}, false
	}
	return m.board.Views[m.selected], true
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
}

// Messages

// TickMsg carries a wall-clock reading from the periodic tick source. It
// overwrites the canonical instant.
type TickMsg time.Time

type refreshMsg time.Time

// Commands

func refreshCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// NewProgram wraps the model in a Bubble Tea program bound to opts.Context.
func NewProgram(opts Options) *tea.Program {
	m := New(opts)
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
}
