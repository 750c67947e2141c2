// Package modalflow is the flow presented modally from the landing screen.
// Its root is the modal screen and it can present a first screen on top of
// itself.
package modalflow

import (
	"slices"

	"github.com/alexisbeaulieu97/navflow/internal/screens/first"
	"github.com/alexisbeaulieu97/navflow/internal/screens/modal"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// Name labels the flow in logs and metrics.
const Name = "modal"

// Route is implemented by first.State.
type Route interface {
	routing.Identifiable
}

type (
	State  = routing.State[Route, modal.State]
	Action = routing.Action[Route, any, any]
	Router = routing.Router[Route, any, modal.State, any]
)

// New creates the flow around a fresh modal screen.
func New() State {
	return routing.NewState[Route](modal.New())
}

// Handler maps modal flow actions to navigation.
func Handler(action Action) (routing.Command[Route], bool) {
	switch action.Kind {
	case routing.ActionRoot:
		if _, ok := action.Root.(modal.PresentAnother); ok {
			return routing.Present[Route](first.New(true)), true
		}
	case routing.ActionModalRoute:
		if _, ok := action.Route.(first.Dismiss); ok {
			return routing.Dismiss[Route](), true
		}
	}
	return routing.Command[Route]{}, false
}

// NewRouter creates the flow reducer. The flow name always wins over a
// WithName in opts.
func NewRouter(opts ...routing.Option) *Router {
	return routing.NewRouter[Route, any, modal.State, any](
		Handler,
		modal.Reducer{},
		routing.Case[Route, any, first.State, any](first.Reducer{}),
		append(slices.Clone(opts), routing.WithName(Name))...,
	)
}

// RouteName names a route without its id.
func RouteName(route Route) string {
	if named, ok := route.(interface{ RouteName() string }); ok {
		return named.RouteName()
	}
	return "unknown"
}
