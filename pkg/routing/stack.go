package routing

import "slices"

// Stack is an ordered, id-keyed collection of routes. Index 0 is the first
// pushed route; the flow's root is never part of the stack.
//
// Mutations never write into a backing array a previous copy can observe, so
// a Stack value copied out of a State behaves as an immutable snapshot.
type Stack[R Identifiable] struct {
	routes []R
}

// NewStack creates a stack holding routes in presentation order.
func NewStack[R Identifiable](routes ...R) Stack[R] {
	if len(routes) == 0 {
		return Stack[R]{}
	}
	return Stack[R]{routes: slices.Clone(routes)}
}

// Len returns the number of routes on the stack.
func (s Stack[R]) Len() int {
	return len(s.routes)
}

// IsEmpty returns true if the stack has no routes.
func (s Stack[R]) IsEmpty() bool {
	return len(s.routes) == 0
}

// Routes returns a copy of the routes, bottom first.
func (s Stack[R]) Routes() []R {
	return slices.Clone(s.routes)
}

// IDs returns the ids of the routes, bottom first.
func (s Stack[R]) IDs() Path {
	ids := make(Path, len(s.routes))
	for i, route := range s.routes {
		ids[i] = route.RouteID()
	}
	return ids
}

// Index returns the position of the route with the given id, or -1.
func (s Stack[R]) Index(id ID) int {
	for i, route := range s.routes {
		if route.RouteID() == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a route with the given id is on the stack.
func (s Stack[R]) Contains(id ID) bool {
	return s.Index(id) >= 0
}

// Get returns the route with the given id.
func (s Stack[R]) Get(id ID) (R, bool) {
	if i := s.Index(id); i >= 0 {
		return s.routes[i], true
	}
	var zero R
	return zero, false
}

// At returns the route at index i.
func (s Stack[R]) At(i int) (R, bool) {
	if i < 0 || i >= len(s.routes) {
		var zero R
		return zero, false
	}
	return s.routes[i], true
}

// Peek returns the top route without removing it.
func (s Stack[R]) Peek() (R, bool) {
	return s.At(len(s.routes) - 1)
}

// Push appends a route to the top of the stack.
func (s *Stack[R]) Push(route R) {
	s.routes = append(slices.Clip(s.routes), route)
}

// RemoveLast removes up to n routes from the top and returns how many were
// removed. Removing from an empty stack is a no-op.
func (s *Stack[R]) RemoveLast(n int) int {
	n = min(max(n, 0), len(s.routes))
	if n == 0 {
		return 0
	}
	if n == len(s.routes) {
		s.routes = nil
		return n
	}
	s.routes = slices.Clip(s.routes[:len(s.routes)-n])
	return n
}

// Clear removes all routes.
func (s *Stack[R]) Clear() int {
	return s.RemoveLast(len(s.routes))
}

// Update applies fn to a copy of the route with the given id and stores the
// result. It returns false when no such route exists.
func (s *Stack[R]) Update(id ID, fn func(route *R)) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	route := s.routes[i]
	fn(&route)
	routes := slices.Clone(s.routes)
	routes[i] = route
	s.routes = routes
	return true
}
