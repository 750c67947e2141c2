// Package landingflow is the application's top flow. Its root is the landing
// screen; it pushes first and second screens and presents either the modal
// flow or a modal first screen.
package landingflow

import (
	"slices"

	"github.com/alexisbeaulieu97/navflow/internal/flows/modalflow"
	"github.com/alexisbeaulieu97/navflow/internal/screens/first"
	"github.com/alexisbeaulieu97/navflow/internal/screens/landing"
	"github.com/alexisbeaulieu97/navflow/internal/screens/modal"
	"github.com/alexisbeaulieu97/navflow/internal/screens/second"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

const Name = "landing"

// Route is implemented by first.State, second.State and modalflow.State.
type Route interface {
	routing.Identifiable
}

type (
	State  = routing.State[Route, landing.State]
	Action = routing.Action[Route, any, any]
	Router = routing.Router[Route, any, landing.State, any]
	Store  = routing.Store[Route, any, landing.State, any]
	View   = routing.View[Route, any, landing.State, any]
)

// New creates the flow around a fresh landing screen.
func New() State {
	return routing.NewState[Route](landing.New())
}

// Handler maps actions arriving anywhere in the landing flow to navigation.
func Handler(action Action) (routing.Command[Route], bool) {
	switch action.Kind {
	case routing.ActionRoot:
		switch action.Root.(type) {
		case landing.PushFirst:
			return routing.Push[Route](first.New(false)), true
		case landing.PresentModal:
			return routing.Present[Route](modalflow.New()), true
		}

	case routing.ActionModalRoute:
		switch a := action.Route.(type) {
		case modalflow.Action:
			if a.Kind != routing.ActionRoot {
				break
			}
			switch a.Root.(type) {
			case modal.Dismiss:
				return routing.Dismiss[Route](), true
			case modal.Replace:
				return routing.Present[Route](first.New(true)), true
			}
		case first.Dismiss:
			return routing.Dismiss[Route](), true
		}

	case routing.ActionRoute:
		switch action.Route.(type) {
		case first.PushSecond:
			return routing.Push[Route](second.New()), true
		case first.PopToLanding, second.PopToFirst:
			return routing.Pop[Route](), true
		case second.PopToRoot:
			return routing.PopToRoot[Route](), true
		}
	}
	return routing.Command[Route]{}, false
}

// NewRouter creates the flow reducer, nesting the modal flow's router. opts
// are shared with the nested router; each router keeps its own name.
func NewRouter(opts ...routing.Option) *Router {
	return routing.NewRouter[Route, any, landing.State, any](
		Handler,
		landing.Reducer{},
		routing.Combine(
			routing.Case[Route, any, first.State, any](first.Reducer{}),
			routing.Case[Route, any, second.State, any](second.Reducer{}),
			routing.Case[Route, any, modalflow.State, modalflow.Action](modalflow.NewRouter(opts...)),
		),
		append(slices.Clone(opts), routing.WithName(Name))...,
	)
}

// NewStore creates a store holding a fresh landing flow.
func NewStore(opts ...routing.Option) *Store {
	return routing.NewStore[Route, any, landing.State, any](New(), NewRouter(opts...))
}

// RouteName names a route without its id. A nested modal flow is named
// "modal_flow", followed by its own modal when one is presented.
func RouteName(route Route) string {
	switch r := route.(type) {
	case modalflow.State:
		if inner, ok := r.Navigation.Modal(); ok {
			return "modal_flow>" + modalflow.RouteName(inner)
		}
		return "modal_flow"
	case interface{ RouteName() string }:
		return r.RouteName()
	default:
		return "unknown"
	}
}
