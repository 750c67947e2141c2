package routing

import "fmt"

// State is the composite state of one flow. S is the root screen's state.
//
// State implements Identifiable, so a whole flow can be the payload of a
// route in a parent flow.
type State[R Identifiable, S Identifiable] struct {
	ID         ID
	Navigation Navigation[R]
	Root       S
}

// NewState creates an idle flow around a root state.
func NewState[R Identifiable, S Identifiable](root S) State[R, S] {
	return State[R, S]{ID: NewID(), Root: root}
}

// RouteID returns the flow's id.
func (s State[R, S]) RouteID() ID {
	return s.ID
}

// Clone returns a copy whose navigation shares no mutable storage with s.
func (s State[R, S]) Clone() State[R, S] {
	s.Navigation = s.Navigation.Clone()
	return s
}

// ActionKind enumerates the four shapes of a flow action.
type ActionKind int

const (
	// ActionNone is the zero kind; a zero Action reaches no reducer.
	ActionNone ActionKind = iota
	ActionNavigation
	ActionRoute
	ActionModalRoute
	ActionRoot
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionNavigation:
		return "navigation"
	case ActionRoute:
		return "route"
	case ActionModalRoute:
		return "modal_route"
	case ActionRoot:
		return "root"
	default:
		return "unknown"
	}
}

// Action is an action of one flow. RA is the action type shared by the
// flow's routes and A is the root screen's action type.
//
//   - ActionNavigation carries Command and is applied directly.
//   - ActionRoute carries ID and Route, addressed to a stacked route.
//   - ActionModalRoute carries Route, addressed to the modal.
//   - ActionRoot carries Root, addressed to the root screen.
type Action[R Identifiable, RA any, A any] struct {
	Kind    ActionKind
	Command Command[R]
	ID      ID
	Route   RA
	Root    A
}

// Navigate wraps a navigation command in a flow action.
func Navigate[RA any, A any, R Identifiable](cmd Command[R]) Action[R, RA, A] {
	return Action[R, RA, A]{Kind: ActionNavigation, Command: cmd}
}

// RouteAction addresses action to the stacked route with the given id.
func RouteAction[R Identifiable, A any, RA any](id ID, action RA) Action[R, RA, A] {
	return Action[R, RA, A]{Kind: ActionRoute, ID: id, Route: action}
}

// ModalAction addresses action to the modal route.
func ModalAction[R Identifiable, A any, RA any](action RA) Action[R, RA, A] {
	return Action[R, RA, A]{Kind: ActionModalRoute, Route: action}
}

// RootAction addresses action to the root screen.
func RootAction[R Identifiable, RA any, A any](action A) Action[R, RA, A] {
	return Action[R, RA, A]{Kind: ActionRoot, Root: action}
}

func (a Action[R, RA, A]) String() string {
	switch a.Kind {
	case ActionNavigation:
		return fmt.Sprintf("navigation(%s)", a.Command)
	case ActionRoute:
		return fmt.Sprintf("route(%s, %T)", shortID(a.ID), a.Route)
	case ActionModalRoute:
		return fmt.Sprintf("modal_route(%T)", a.Route)
	case ActionRoot:
		return fmt.Sprintf("root(%T)", a.Root)
	default:
		return a.Kind.String()
	}
}
