package routing

import (
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// Store owns a flow's state and serializes dispatch: each action is fully
// reduced, navigation included, before the next one is accepted. Concurrent
// callers queue on an internal lock.
type Store[R Identifiable, RA any, S Identifiable, A any] struct {
	mu          sync.Mutex
	state       State[R, S]
	reducer     Reducer[State[R, S], Action[R, RA, A]]
	subscribers []subscriber[R, S]
	nextSub     uint64
	dispatched  atomic.Uint64
}

type subscriber[R Identifiable, S Identifiable] struct {
	id uint64
	fn func(State[R, S])
}

// NewStore creates a store around an initial state and the flow's reducer,
// normally a *Router.
func NewStore[R Identifiable, RA any, S Identifiable, A any](
	initial State[R, S],
	reducer Reducer[State[R, S], Action[R, RA, A]],
) *Store[R, RA, S, A] {
	return &Store[R, RA, S, A]{
		state:   initial.Clone(),
		reducer: reducer,
	}
}

// Dispatch reduces one action and then notifies subscribers with the new
// state. Subscribers run outside the lock and may dispatch again.
func (s *Store[R, RA, S, A]) Dispatch(action Action[R, RA, A]) {
	snapshot, subscribers := s.reduce(action)
	s.dispatched.Inc()
	for _, sub := range subscribers {
		sub.fn(snapshot)
	}
}

func (s *Store[R, RA, S, A]) reduce(action Action[R, RA, A]) (State[R, S], []subscriber[R, S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reducer.Reduce(&s.state, action)
	return s.state.Clone(), slices.Clone(s.subscribers)
}

// Send is Dispatch as a function value.
func (s *Store[R, RA, S, A]) Send(action Action[R, RA, A]) {
	s.Dispatch(action)
}

// State returns a snapshot of the current state.
func (s *Store[R, RA, S, A]) State() State[R, S] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Stack returns the pushed routes, bottom first.
func (s *Store[R, RA, S, A]) Stack() []R {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Navigation.Routes()
}

// Modal returns the modal route, if any.
func (s *Store[R, RA, S, A]) Modal() (R, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Navigation.Modal()
}

// UpdateExternalPath feeds back a path observed by a presenter. It is the only
// way a presentation layer may change the stack.
func (s *Store[R, RA, S, A]) UpdateExternalPath(path Path) {
	s.Dispatch(Navigate[RA, A](UpdatePath[R](path)))
}

// PathBinding exposes the stack ids as an explicit getter/setter pair.
func (s *Store[R, RA, S, A]) PathBinding() PathBinding {
	return PathBinding{
		Get: func() Path {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.state.Navigation.Path()
		},
		Set: s.UpdateExternalPath,
	}
}

// Subscribe registers fn to run after every dispatch. The returned function
// removes the subscription.
func (s *Store[R, RA, S, A]) Subscribe(fn func(State[R, S])) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subscribers = append(s.subscribers, subscriber[R, S]{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subscribers = slices.DeleteFunc(slices.Clone(s.subscribers), func(sub subscriber[R, S]) bool {
			return sub.id == id
		})
	}
}

// Dispatched returns the number of actions dispatched so far.
func (s *Store[R, RA, S, A]) Dispatched() uint64 {
	return s.dispatched.Load()
}
