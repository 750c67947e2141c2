package routing

// Reducer mutates a state in response to an action. Reducers are
// synchronous and perform no I/O.
type Reducer[S any, A any] interface {
	Reduce(state *S, action A)
}

// ReducerFunc adapts a function to Reducer.
type ReducerFunc[S any, A any] func(state *S, action A)

// Reduce calls f.
func (f ReducerFunc[S, A]) Reduce(state *S, action A) {
	f(state, action)
}

// Combine runs reducers in order on the same state and action.
func Combine[S any, A any](reducers ...Reducer[S, A]) Reducer[S, A] {
	return ReducerFunc[S, A](func(state *S, action A) {
		for _, reducer := range reducers {
			reducer.Reduce(state, action)
		}
	})
}

// Case scopes child to one route variant. The child runs only when the
// route's dynamic type is P and the action's dynamic type is PA; the reduced
// payload is written back into the route. Any other pairing is ignored.
//
// P must implement R, which holds whenever R is the flow's Route interface
// and P one of its payload types.
func Case[R Identifiable, RA any, P any, PA any](child Reducer[P, PA]) Reducer[R, RA] {
	return ReducerFunc[R, RA](func(route *R, action RA) {
		payload, ok := any(*route).(P)
		if !ok {
			return
		}
		childAction, ok := any(action).(PA)
		if !ok {
			return
		}
		child.Reduce(&payload, childAction)
		if updated, ok := any(payload).(R); ok {
			*route = updated
		}
	})
}
