// Package second is the screen pushed on top of first.
package second

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
func (State) RouteName() string     { return "second" }

type (
	SetText    struct{ Text string }
	PopToFirst struct{}
	PopToRoot  struct{}
)

var Actions = screens.Catalog{
	"set_text":     func(text string) any { return SetText{Text: text} },
	"pop_to_first": func(string) any { return PopToFirst{} },
	"pop_to_root":  func(string) any { return PopToRoot{} },
}

type Reducer struct{}

func (Reducer) Reduce(state *State, action any) {
	if a, ok := action.(SetText); ok {
		state.Text = a.Text
	}
}
