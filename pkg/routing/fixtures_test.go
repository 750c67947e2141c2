package routing

// Fixtures for a small flow: a root "home" screen, two page types and a
// nested flow that can be pushed or presented.

type page interface {
	Identifiable
}

type pageA struct {
	ID   ID
	Text string
}

func newPageA() pageA { return pageA{ID: NewID()} }

func (p pageA) RouteID() ID       { return p.ID }
func (p pageA) RouteName() string { return "a" }

type pageB struct {
	ID    ID
	Count int
}

func newPageB() pageB { return pageB{ID: NewID()} }

func (p pageB) RouteID() ID { return p.ID }

type home struct {
	ID      ID
	Text    string
	Presses int
}

func (h home) RouteID() ID { return h.ID }

type (
	setText  struct{ Text string }
	openA    struct{}
	openB    struct{}
	goBack   struct{}
	goHome   struct{}
	bump     struct{}
	showA    struct{}
	closeTop struct{}
)

type homeReducer struct{}

func (homeReducer) Reduce(state *home, action any) {
	switch a := action.(type) {
	case setText:
		state.Text = a.Text
	case openA:
		state.Text = ""
		state.Presses++
	}
}

type pageAReducer struct{}

func (pageAReducer) Reduce(state *pageA, action any) {
	if a, ok := action.(setText); ok {
		state.Text = a.Text
	}
}

type pageBReducer struct{}

func (pageBReducer) Reduce(state *pageB, action any) {
	if _, ok := action.(bump); ok {
		state.Count++
	}
}

type (
	testState  = State[page, home]
	testAction = Action[page, any, any]
)

func testHandler(action testAction) (Command[page], bool) {
	switch action.Kind {
	case ActionRoot:
		switch action.Root.(type) {
		case openA:
			return Push[page](newPageA()), true
		case showA:
			return Present[page](newPageA()), true
		}
	case ActionRoute:
		switch action.Route.(type) {
		case openB:
			return Push[page](newPageB()), true
		case goBack:
			return Pop[page](), true
		case goHome:
			return PopToRoot[page](), true
		}
	case ActionModalRoute:
		if _, ok := action.Route.(closeTop); ok {
			return Dismiss[page](), true
		}
	}
	return Command[page]{}, false
}

func newTestRouter(opts ...Option) *Router[page, any, home, any] {
	return NewRouter[page, any, home, any](
		testHandler,
		homeReducer{},
		Combine(
			Case[page, any, pageA, any](pageAReducer{}),
			Case[page, any, pageB, any](pageBReducer{}),
		),
		opts...,
	)
}

func newTestState() testState {
	return NewState[page](home{ID: NewID()})
}

type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.debug = append(l.debug, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.warn = append(l.warn, msg) }

type appliedCommand struct {
	flow    string
	kind    CommandKind
	changed bool
	depth   int
	modal   bool
}

type recordingObserver struct {
	applied []appliedCommand
	dropped []ActionKind
}

func (o *recordingObserver) CommandApplied(flow string, kind CommandKind, changed bool, depth int, modal bool) {
	o.applied = append(o.applied, appliedCommand{flow: flow, kind: kind, changed: changed, depth: depth, modal: modal})
}

func (o *recordingObserver) ActionDropped(_ string, kind ActionKind) {
	o.dropped = append(o.dropped, kind)
}

func rootAct(a any) testAction            { return RootAction[page, any](a) }
func routeAct(id ID, a any) testAction    { return RouteAction[page, any](id, a) }
func modalAct(a any) testAction           { return ModalAction[page, any](a) }
func navAct(cmd Command[page]) testAction { return Navigate[any, any](cmd) }
