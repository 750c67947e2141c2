// Package tui hosts the landing flow in a terminal. The terminal acts as the
// flow's presenter: it keeps its own back stack, mirrors the flow's stack
// into it and reports back gestures through the external path.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/navflow/internal/flows/landingflow"
	"github.com/alexisbeaulieu97/navflow/internal/logger"
	"github.com/alexisbeaulieu97/navflow/internal/screens/landing"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// Options configures the terminal UI.
type Options struct {
	// Transition is how long a popped screen stays drawn; 0 releases it at once.
	Transition time.Duration
	Theme      string
	Logger     *logger.Logger
}

// transitionDoneMsg releases screens whose pop transition finished.
type transitionDoneMsg struct {
	IDs []routing.ID
}

// Model is the bubbletea model of the navflow terminal UI.
type Model struct {
	store     *landingflow.Store
	view      *landingflow.View
	presenter *screenStack
	sync      *routing.Synchronizer

	input   textinput.Model
	help    help.Model
	keys    keyMap
	styles  styles
	cursor  int
	topID   routing.ID
	modalID routing.ID
	leaving []routing.ID
	status  string

	transition time.Duration
	log        *logger.Logger

	width    int
	quitting bool
}

// NewModel creates a model around store and attaches the terminal's back
// stack to it.
func NewModel(store *landingflow.Store, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "type, then enter"
	input.CharLimit = 64

	m := Model{
		store:      store,
		view:       routing.ViewOf(store),
		presenter:  &screenStack{},
		sync:       routing.NewSynchronizer(),
		input:      input,
		help:       help.New(),
		keys:       defaultKeyMap(),
		styles:     newStyles(opts.Theme),
		transition: opts.Transition,
		log:        opts.Logger,
	}

	m.sync.Attach(m.presenter, nil)
	m.sync.Sync(m.presenter, store.State().Navigation.Path())
	presenter, sync := m.presenter, m.sync
	store.Subscribe(func(s landingflow.State) {
		sync.Sync(presenter, s.Navigation.Path())
	})
	return m
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Depth returns how many screens the terminal shows above the landing screen.
func (m Model) Depth() int {
	return m.presenter.Depth()
}

// Leaving returns the screens still fading out.
func (m Model) Leaving() []routing.ID {
	return append([]routing.ID(nil), m.leaving...)
}

// top resolves the front-most screen through the flow's view.
func (m Model) top() screen {
	return routing.Render[landingflow.Route, any, landing.State, any, screen](m.view, landingRenderer{view: m.view}).Top()
}
