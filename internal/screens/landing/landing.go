// Package landing is the root screen of the landing flow.
package landing

import (
	"github.com/alexisbeaulieu97/navflow/internal/screens"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// State is the landing screen.
type State struct {
	ID   routing.ID
	Text string
}

// New creates an empty landing screen.
func New() State {
	return State{ID: routing.NewID()}
}

func (s State) RouteID() routing.ID { return s.ID }
func (State) RouteName() string     { return "landing" }

type (
	// SetText replaces the input text.
	SetText struct{ Text string }
	// PushFirst asks the flow to push the first screen.
	PushFirst struct{}
	// PresentModal asks the flow to present the modal flow.
	PresentModal struct{}
)

// Actions lists what the landing screen can send.
var Actions = screens.Catalog{
	"set_text":      func(text string) any { return SetText{Text: text} },
	"push_first":    func(string) any { return PushFirst{} },
	"present_modal": func(string) any { return PresentModal{} },
}

// Reducer reduces landing actions.
type Reducer struct{}

// Reduce clears the input once the first screen is pushed, so returning to
// the landing screen starts from a blank field.
func (Reducer) Reduce(state *State, action any) {
	switch a := action.(type) {
	case SetText:
		state.Text = a.Text
	case PushFirst:
		state.Text = ""
	}
}
