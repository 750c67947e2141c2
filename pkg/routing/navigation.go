package routing

import (
	"fmt"

	navflowerrors "github.com/alexisbeaulieu97/navflow/pkg/errors"
)

// Phase is the coarse state of a flow's navigation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStacked
	PhaseModal
	PhaseStackedModal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStacked:
		return "stacked"
	case PhaseModal:
		return "modal"
	case PhaseStackedModal:
		return "stacked_modal"
	default:
		return "unknown"
	}
}

// Navigation is the navigation state of one flow: the pushed routes and an
// optional modal route. The zero value is idle and ready to use.
type Navigation[R Identifiable] struct {
	stack    Stack[R]
	modal    R
	hasModal bool
}

// NewNavigation creates a navigation state with the given stack and no modal.
func NewNavigation[R Identifiable](routes ...R) Navigation[R] {
	return Navigation[R]{stack: NewStack(routes...)}
}

// Stack returns the pushed routes as a snapshot.
func (n Navigation[R]) Stack() Stack[R] {
	return n.stack
}

// Routes returns the pushed routes, bottom first.
func (n Navigation[R]) Routes() []R {
	return n.stack.Routes()
}

// Depth returns the number of pushed routes.
func (n Navigation[R]) Depth() int {
	return n.stack.Len()
}

// Path returns the ids of the pushed routes.
func (n Navigation[R]) Path() Path {
	return n.stack.IDs()
}

// Modal returns the modally presented route, if any.
func (n Navigation[R]) Modal() (R, bool) {
	return n.modal, n.hasModal
}

// Phase reports the coarse state of the navigation.
func (n Navigation[R]) Phase() Phase {
	switch {
	case n.stack.IsEmpty() && !n.hasModal:
		return PhaseIdle
	case n.stack.IsEmpty():
		return PhaseModal
	case !n.hasModal:
		return PhaseStacked
	default:
		return PhaseStackedModal
	}
}

// PhaseString renders the phase with its depth, e.g. "stacked(2)".
func (n Navigation[R]) PhaseString() string {
	switch p := n.Phase(); p {
	case PhaseStacked, PhaseStackedModal:
		return fmt.Sprintf("%s(%d)", p, n.stack.Len())
	default:
		return p.String()
	}
}

// UpdateModal applies fn to a copy of the modal route and stores the result.
// It returns false when no modal is presented.
func (n *Navigation[R]) UpdateModal(fn func(route *R)) bool {
	if !n.hasModal {
		return false
	}
	route := n.modal
	fn(&route)
	n.modal = route
	return true
}

// UpdateRoute applies fn to the stacked route with the given id.
func (n *Navigation[R]) UpdateRoute(id ID, fn func(route *R)) bool {
	return n.stack.Update(id, fn)
}

// Apply executes a navigation command and reports whether the state changed.
// Apply is total: commands that cannot take effect are no-ops.
func (n *Navigation[R]) Apply(cmd Command[R]) bool {
	switch cmd.Kind {
	case CommandPush:
		if isNilRoute(cmd.Route) {
			return false
		}
		n.stack.Push(cmd.Route)
		return true
	case CommandPop:
		if cmd.ToRoot {
			return n.stack.Clear() > 0
		}
		return n.stack.RemoveLast(cmd.Count) > 0
	case CommandPresent:
		if isNilRoute(cmd.Route) {
			return false
		}
		n.modal = cmd.Route
		n.hasModal = true
		return true
	case CommandDismiss:
		if !n.hasModal {
			return false
		}
		var zero R
		n.modal = zero
		n.hasModal = false
		return true
	case CommandUpdatePath:
		if cmd.Path == nil {
			return false
		}
		excess := n.stack.Len() - len(cmd.Path)
		if excess <= 0 {
			return false
		}
		return n.stack.RemoveLast(excess) > 0
	default:
		return false
	}
}

// Check reports a contract violation the command would introduce. Violations
// are programming errors in the caller; Apply does not defend against them.
func (n Navigation[R]) Check(cmd Command[R]) error {
	switch cmd.Kind {
	case CommandPush, CommandPresent:
		if isNilRoute(cmd.Route) {
			return navflowerrors.NewInvariantError("", cmd.Kind.String(), "", "nil route")
		}
	}

	switch cmd.Kind {
	case CommandPush:
		id := cmd.Route.RouteID()
		if n.stack.Contains(id) {
			return navflowerrors.NewInvariantError("", cmd.Kind.String(), id.String(), "route id already on the stack")
		}
		if n.hasModal && n.modal.RouteID() == id {
			return navflowerrors.NewInvariantError("", cmd.Kind.String(), id.String(), "route id is the presented modal")
		}
	case CommandPresent:
		id := cmd.Route.RouteID()
		if n.stack.Contains(id) {
			return navflowerrors.NewInvariantError("", cmd.Kind.String(), id.String(), "route id already on the stack")
		}
	}
	return nil
}

// isNilRoute reports an unset route of an interface route type.
func isNilRoute[R Identifiable](route R) bool {
	return any(route) == nil
}

// Clone returns a copy sharing no mutable storage with n.
func (n Navigation[R]) Clone() Navigation[R] {
	n.stack = NewStack(n.stack.routes...)
	return n
}

// Equal reports whether two navigation states hold equal stacks and modals.
func (n Navigation[R]) Equal(other Navigation[R]) bool {
	if n.hasModal != other.hasModal || n.stack.Len() != other.stack.Len() {
		return false
	}
	if n.hasModal && !Equal(n.modal, other.modal) {
		return false
	}
	for i := range n.stack.routes {
		if !Equal(n.stack.routes[i], other.stack.routes[i]) {
			return false
		}
	}
	return true
}
