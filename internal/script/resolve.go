package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/navflow/internal/flows/modalflow"
	"github.com/alexisbeaulieu97/navflow/internal/screens"
	"github.com/alexisbeaulieu97/navflow/internal/screens/first"
	"github.com/alexisbeaulieu97/navflow/internal/screens/modal"
	"github.com/alexisbeaulieu97/navflow/internal/screens/second"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// ErrNoTarget is returned when a step addresses a screen that is not shown.
var ErrNoTarget = errors.New("no such target")

// resolved is the screen a target points at and how to wrap an action for it
// into the envelopes of every flow on the way down.
type resolved struct {
	screen  string
	catalog screens.Catalog
	wrap    func(any) any
}

func resolveFlow[R routing.Identifiable, S routing.Identifiable](
	state routing.State[R, S],
	rootName string,
	root screens.Catalog,
	segments []string,
) (resolved, error) {
	segment, rest := segments[0], segments[1:]

	switch {
	case segment == "root":
		if len(rest) > 0 {
			return resolved{}, fmt.Errorf("%w: %s has no nested screens", ErrNoTarget, rootName)
		}
		return resolved{
			screen:  rootName,
			catalog: root,
			wrap:    func(a any) any { return routing.RootAction[R, any](a) },
		}, nil

	case segment == "modal":
		route, ok := state.Navigation.Modal()
		if !ok {
			return resolved{}, fmt.Errorf("%w: nothing is presented over %s", ErrNoTarget, rootName)
		}
		inner, err := resolveRoute(route, rest)
		if err != nil {
			return resolved{}, err
		}
		return resolved{
			screen:  inner.screen,
			catalog: inner.catalog,
			wrap:    func(a any) any { return routing.ModalAction[R, any](inner.wrap(a)) },
		}, nil

	case strings.HasPrefix(segment, "route:"):
		index, err := strconv.Atoi(strings.TrimPrefix(segment, "route:"))
		if err != nil {
			return resolved{}, fmt.Errorf("%w: bad route index in %q", ErrNoTarget, segment)
		}
		route, ok := state.Navigation.Stack().At(index)
		if !ok {
			return resolved{}, fmt.Errorf("%w: %s stack has %d routes, no index %d", ErrNoTarget, rootName, state.Navigation.Depth(), index)
		}
		inner, err := resolveRoute(route, rest)
		if err != nil {
			return resolved{}, err
		}
		id := route.RouteID()
		return resolved{
			screen:  inner.screen,
			catalog: inner.catalog,
			wrap:    func(a any) any { return routing.RouteAction[R, any](id, inner.wrap(a)) },
		}, nil

	default:
		return resolved{}, fmt.Errorf("%w: unknown segment %q", ErrNoTarget, segment)
	}
}

func resolveRoute(route routing.Identifiable, rest []string) (resolved, error) {
	switch r := route.(type) {
	case first.State:
		return leaf("first", r.Actions(), rest)
	case second.State:
		return leaf("second", second.Actions, rest)
	case modalflow.State:
		if len(rest) == 0 {
			return resolved{}, fmt.Errorf("%w: address the modal flow through root, modal or route:N", ErrNoTarget)
		}
		return resolveFlow(r, "modal", modal.Actions, rest)
	default:
		return resolved{}, fmt.Errorf("%w: unsupported route %T", ErrNoTarget, route)
	}
}

func leaf(screen string, catalog screens.Catalog, rest []string) (resolved, error) {
	if len(rest) > 0 {
		return resolved{}, fmt.Errorf("%w: %s has no nested screens", ErrNoTarget, screen)
	}
	return resolved{screen: screen, catalog: catalog, wrap: func(a any) any { return a }}, nil
}
