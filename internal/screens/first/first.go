// Package first is a screen used both pushed on the landing stack and
// presented modally.
package first

import (
	"github.com/alexisbeaulieu97/navflow/internal/screens"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// State is the first screen. IsModal decides which buttons it offers.
type State struct {
	ID      routing.ID
	Text    string
	IsModal bool
}

// New creates a first screen.
func New(isModal bool) State {
	return State{ID: routing.NewID(), IsModal: isModal}
}

func (s State) RouteID() routing.ID { return s.ID }
func (State) RouteName() string     { return "first" }

type (
	SetText      struct{ Text string }
	PushSecond   struct{}
	PopToLanding struct{}
	Dismiss      struct{}
)

var (
	stacked = screens.Catalog{
		"set_text":       func(text string) any { return SetText{Text: text} },
		"push_second":    func(string) any { return PushSecond{} },
		"pop_to_landing": func(string) any { return PopToLanding{} },
	}
	presented = screens.Catalog{
		"set_text": func(text string) any { return SetText{Text: text} },
		"dismiss":  func(string) any { return Dismiss{} },
	}
)

// Actions returns the actions the screen offers in its current presentation.
func (s State) Actions() screens.Catalog {
	if s.IsModal {
		return presented
	}
	return stacked
}

type Reducer struct{}

func (Reducer) Reduce(state *State, action any) {
	if a, ok := action.(SetText); ok {
		state.Text = a.Text
	}
}
