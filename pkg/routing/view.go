package routing

// View resolves what a presentation layer should draw for one flow. It reads
// state through a getter and wraps everything the presentation sends back
// into the flow's action envelopes.
//
// Route and modal lookups are wrapped with ReplayNonNil, so a screen still on
// its way out keeps rendering its last known state. Call Release once such a
// screen is gone. A View is meant to be used from a single goroutine.
type View[R Identifiable, RA any, S Identifiable, A any] struct {
	state    func() State[R, S]
	send     func(Action[R, RA, A])
	routes   map[ID]func(ID) (R, bool)
	modal    func(struct{}) (R, bool)
	children map[ID]any
}

// NewView creates a view over a state getter and a send function.
func NewView[R Identifiable, RA any, S Identifiable, A any](
	state func() State[R, S],
	send func(Action[R, RA, A]),
) *View[R, RA, S, A] {
	v := &View[R, RA, S, A]{
		state:    state,
		send:     send,
		routes:   make(map[ID]func(ID) (R, bool)),
		children: make(map[ID]any),
	}
	v.modal = ReplayNonNil(func(struct{}) (R, bool) {
		return v.state().Navigation.Modal()
	})
	return v
}

// ViewOf creates a view over a store.
func ViewOf[R Identifiable, RA any, S Identifiable, A any](store *Store[R, RA, S, A]) *View[R, RA, S, A] {
	return NewView(store.State, store.Dispatch)
}

// State returns the current flow state.
func (v *View[R, RA, S, A]) State() State[R, S] {
	return v.state()
}

// Root returns the root state and a send function for root actions.
func (v *View[R, RA, S, A]) Root() (S, func(A)) {
	return v.state().Root, v.SendRoot
}

// Path returns the ids of the currently pushed routes.
func (v *View[R, RA, S, A]) Path() Path {
	return v.state().Navigation.Path()
}

// Stack returns the currently pushed routes.
func (v *View[R, RA, S, A]) Stack() []R {
	return v.state().Navigation.Routes()
}

// Route resolves the stacked route with the given id and a send function
// addressed to it. A route that was just removed resolves to its last known
// state; the boolean is false only for ids never seen.
func (v *View[R, RA, S, A]) Route(id ID) (R, func(RA), bool) {
	lookup, ok := v.routes[id]
	if !ok {
		lookup = ReplayNonNil(func(id ID) (R, bool) {
			return v.state().Navigation.Stack().Get(id)
		})
		v.routes[id] = lookup
	}
	route, found := lookup(id)
	return route, func(action RA) { v.SendRoute(id, action) }, found
}

// Presenting reports whether a modal is currently presented.
func (v *View[R, RA, S, A]) Presenting() bool {
	_, ok := v.state().Navigation.Modal()
	return ok
}

// Modal resolves the modal route, replaying the last presented one after a
// dismissal so a closing sheet can finish drawing. Use Presenting to decide
// whether the sheet should be shown at all.
func (v *View[R, RA, S, A]) Modal() (R, func(RA), bool) {
	route, ok := v.modal(struct{}{})
	return route, v.SendModal, ok
}

// SendRoot dispatches a root action.
func (v *View[R, RA, S, A]) SendRoot(action A) {
	v.send(RootAction[R, RA](action))
}

// SendRoute dispatches an action to the stacked route with the given id.
func (v *View[R, RA, S, A]) SendRoute(id ID, action RA) {
	v.send(RouteAction[R, A](id, action))
}

// SendModal dispatches an action to the modal route.
func (v *View[R, RA, S, A]) SendModal(action RA) {
	v.send(ModalAction[R, A](action))
}

// Navigate dispatches a navigation command directly.
func (v *View[R, RA, S, A]) Navigate(cmd Command[R]) {
	v.send(Navigate[RA, A](cmd))
}

// Child returns a value retained for route id, building it on first use.
// Renderers keep nested flow views here so their replay caches survive
// across frames.
func (v *View[R, RA, S, A]) Child(id ID, build func() any) any {
	if child, ok := v.children[id]; ok {
		return child
	}
	child := build()
	v.children[id] = child
	return child
}

// Release forgets the replay cache and retained child of route id.
func (v *View[R, RA, S, A]) Release(id ID) {
	delete(v.routes, id)
	delete(v.children, id)
}

// Renderer produces presentation output for a flow. Implementations are the
// excluded UI layer: they draw the root screen and each route case, recursing
// into nested flows through a child View.
type Renderer[R Identifiable, RA any, S Identifiable, A any, UI any] interface {
	RenderRoot(root S, send func(A)) UI
	RenderRoute(route R, send func(RA)) UI
}

// Frame is everything a flow shows at one moment.
type Frame[UI any] struct {
	Root     UI
	Stack    []UI
	Modal    UI
	HasModal bool
}

// Top returns the front-most element of the frame.
func (f Frame[UI]) Top() UI {
	switch {
	case f.HasModal:
		return f.Modal
	case len(f.Stack) > 0:
		return f.Stack[len(f.Stack)-1]
	default:
		return f.Root
	}
}

// Render draws the root, every pushed route and the presented modal.
func Render[R Identifiable, RA any, S Identifiable, A any, UI any](
	view *View[R, RA, S, A],
	renderer Renderer[R, RA, S, A, UI],
) Frame[UI] {
	root, sendRoot := view.Root()
	frame := Frame[UI]{Root: renderer.RenderRoot(root, sendRoot)}

	for _, id := range view.Path() {
		if route, send, ok := view.Route(id); ok {
			frame.Stack = append(frame.Stack, renderer.RenderRoute(route, send))
		}
	}

	if view.Presenting() {
		if modal, send, ok := view.Modal(); ok {
			frame.Modal = renderer.RenderRoute(modal, send)
			frame.HasModal = true
		}
	}
	return frame
}
