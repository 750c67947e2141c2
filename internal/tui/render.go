package tui

import (
	"github.com/alexisbeaulieu97/navflow/internal/flows/landingflow"
	"github.com/alexisbeaulieu97/navflow/internal/flows/modalflow"
	"github.com/alexisbeaulieu97/navflow/internal/screens"
	"github.com/alexisbeaulieu97/navflow/internal/screens/first"
	"github.com/alexisbeaulieu97/navflow/internal/screens/landing"
	"github.com/alexisbeaulieu97/navflow/internal/screens/modal"
	"github.com/alexisbeaulieu97/navflow/internal/screens/second"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// screen is what the terminal draws for one route: a title, the text a user
// typed and the actions the route accepts, with a send addressed to it.
type screen struct {
	ID      routing.ID
	Title   string
	Text    string
	Actions screens.Catalog
	Send    func(any)
	// Trail holds the titles of nested screens below this one.
	Trail []string
}

// landingRenderer draws the landing flow. Nested modal flows are drawn
// through a child view retained on the parent view.
type landingRenderer struct {
	view *landingflow.View
}

func (r landingRenderer) RenderRoot(root landing.State, send func(any)) screen {
	return screen{ID: root.ID, Title: "Landing", Text: root.Text, Actions: landing.Actions, Send: send}
}

func (r landingRenderer) RenderRoute(route landingflow.Route, send func(any)) screen {
	if nested, ok := route.(modalflow.State); ok {
		return r.renderModalFlow(nested, send)
	}
	return renderLeaf(route, send)
}

// nestedFlow keeps a child view alive across frames. The getter reads the
// payload most recently resolved by the parent's replayed lookup.
type nestedFlow struct {
	state modalflow.State
	view  *routing.View[modalflow.Route, any, modal.State, any]
}

func (r landingRenderer) renderModalFlow(state modalflow.State, send func(any)) screen {
	child := r.view.Child(state.ID, func() any {
		n := &nestedFlow{}
		n.view = routing.NewView(
			func() modalflow.State { return n.state },
			func(a modalflow.Action) { send(a) },
		)
		return n
	}).(*nestedFlow)
	child.state = state

	frame := routing.Render[modalflow.Route, any, modal.State, any, screen](child.view, modalRenderer{})
	top := frame.Top()
	if frame.HasModal {
		top.Trail = append([]string{frame.Root.Title}, top.Trail...)
	}
	return top
}

type modalRenderer struct{}

func (modalRenderer) RenderRoot(root modal.State, send func(any)) screen {
	return screen{ID: root.ID, Title: "Modal", Text: root.Text, Actions: modal.Actions, Send: send}
}

func (modalRenderer) RenderRoute(route modalflow.Route, send func(any)) screen {
	return renderLeaf(route, send)
}

func renderLeaf(route routing.Identifiable, send func(any)) screen {
	switch r := route.(type) {
	case first.State:
		title := "First"
		if r.IsModal {
			title = "First (modal)"
		}
		return screen{ID: r.ID, Title: title, Text: r.Text, Actions: r.Actions(), Send: send}
	case second.State:
		return screen{ID: r.ID, Title: "Second", Text: r.Text, Actions: second.Actions, Send: send}
	default:
		return screen{ID: route.RouteID(), Title: routing.Describe(route), Actions: screens.Catalog{}, Send: send}
	}
}
