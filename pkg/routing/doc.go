// Package routing provides declarative navigation state for tree-shaped
// applications.
//
// A flow owns a root screen, a linear push/pop stack of routes and at most one
// modal route. Flows nest: a route payload can itself be a whole flow State,
// with its own stack and modal reduced independently of its parent.
//
// # Building a flow
//
// A flow author declares a Route interface whose variants are the payload
// types of the flow's screens, a root state, and a Handler mapping actions to
// navigation commands:
//
//	type Route interface{ routing.Identifiable }
//
//	type State = routing.State[Route, landing.State]
//	type Action = routing.Action[Route, any, landing.Action]
//
//	func handle(action Action) (routing.Command[Route], bool) {
//	    if action.Kind == routing.ActionRoot {
//	        if _, ok := action.Root.(landing.PushFirst); ok {
//	            return routing.Push[Route](first.New(false)), true
//	        }
//	    }
//	    return routing.Command[Route]{}, false
//	}
//
//	router := routing.NewRouter[Route, any, landing.State, landing.Action](
//	    handle,
//	    landing.Reducer{},
//	    routing.Case[Route, any, first.State, first.Action](first.Reducer{}),
//	)
//
// A Store serializes dispatch over a Router, and a View resolves what a
// presentation layer should draw, smoothing transient lookups during pop
// transitions with ReplayNonNil.
//
// # External paths
//
// Presentation layers that keep their own back stack report out-of-band pops
// through UpdatePath. The stack is the source of truth: an external path can
// only shrink the stack, never grow it. Synchronizer keeps a side table of the
// ids each presenter is showing and reconciles them after every state change.
package routing
