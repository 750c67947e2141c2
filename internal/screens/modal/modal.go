// Package modal is the root screen of the modal flow.
package modal

import (
	"github.com/alexisbeaulieu97/navflow/internal/screens"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

type State struct {
	ID   routing.ID
	Text string
}

func New() State {
	return State{ID: routing.NewID()}
}

func (s State) RouteID() routing.ID { return s.ID }
func (State) RouteName() string     { return "modal" }

type (
	SetText struct{ Text string }
	// PresentAnother presents a first screen over the modal flow itself.
	PresentAnother struct{}
	// Replace swaps the whole modal flow for a modal first screen.
	Replace struct{}
	Dismiss struct{}
)

var Actions = screens.Catalog{
	"set_text":        func(text string) any { return SetText{Text: text} },
	"present_another": func(string) any { return PresentAnother{} },
	"replace":         func(string) any { return Replace{} },
	"dismiss":         func(string) any { return Dismiss{} },
}

type Reducer struct{}

func (Reducer) Reduce(state *State, action any) {
	if a, ok := action.(SetText); ok {
		state.Text = a.Text
	}
}
