package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davess/kview/internal/state"
	"github.com/davess/kview/internal/table"
)

// Options configure the dashboard UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	PollTick   time.Duration
	PageSize   int
	ThemeName  string
	Visibility table.VisibilityStore
	APIBind    string
}

// view identifies the active list screen.
type view int

const (
	ViewWorkloads view = iota
	ViewEvents
)

// mode identifies what the keyboard currently drives.
type mode int

const (
	modeList mode = iota
	modeSearch
	modeFilter
	modeColumns
	modeDetail
	modeHelp
)

// tickMsg drives the UI refresh from the snapshot store.
type tickMsg time.Time

// Model is the bubbletea model for the whole dashboard.
type Model struct {
	ctx      context.Context
	store    *state.Store
	pollTick time.Duration
	apiBind  string

	theme  Theme
	styles Styles
	keys   keyMap
	help   help.Model

	width  int
	height int

	snapshot state.Snapshot

	currentView view
	mode        mode

	workloads *workloadScreen
	events    *eventScreen

	searchInput textinput.Model

	// filter overlay cursor
	filterCol int
	filterVal int

	// columns overlay cursor
	columnCursor int

	detail viewport.Model
}

// New builds the dashboard model.
func New(opts Options) Model {
	theme := ThemeByName(opts.ThemeName)

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "regex, case-insensitive"
	input.CharLimit = 120

	tick := opts.PollTick
	if tick <= 0 {
		tick = time.Second
	}

	m := Model{
		ctx:         opts.Context,
		store:       opts.Store,
		pollTick:    tick,
		apiBind:     opts.APIBind,
		theme:       theme,
		styles:      theme.Styles(),
		keys:        newKeyMap(),
		help:        help.New(),
		workloads:   newWorkloadScreen(opts.Visibility, opts.PageSize),
		events:      newEventScreen(opts.Visibility),
		searchInput: input,
	}
	if opts.Store != nil {
		m.snapshot = opts.Store.Snapshot()
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.pollTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// recompute reruns both screens' engine passes against the current
// snapshot.
func (m *Model) recompute() {
	m.events.viewRows = m.bodyRows()
	m.workloads.recompute(m.snapshot)
	m.events.recompute(m.snapshot)
}

// bodyRows is the number of terminal rows available for table rows:
// total height minus header, column header, footer, and status line.
func (m *Model) bodyRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Run starts the dashboard and blocks until exit.
func Run(opts Options) error {
	prog := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := prog.Run()
	return err
}
