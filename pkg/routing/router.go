package routing

import (
	"errors"

	navflowerrors "github.com/alexisbeaulieu97/navflow/pkg/errors"
)

// Logger is the structured logging contract used by routers and stores.
// Fields are key/value pairs.
type Logger interface {
	Debug(msg string, fields ...any)
	Warn(msg string, fields ...any)
}

// Observer receives navigation telemetry from a router.
type Observer interface {
	CommandApplied(flow string, kind CommandKind, changed bool, depth int, modal bool)
	ActionDropped(flow string, kind ActionKind)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

type nopObserver struct{}

func (nopObserver) CommandApplied(string, CommandKind, bool, int, bool) {}
func (nopObserver) ActionDropped(string, ActionKind)                    {}

type options struct {
	name       string
	logger     Logger
	observer   Observer
	assertions bool
}

// Option configures a Router.
type Option func(*options)

// WithName labels the flow in logs, metrics and invariant errors.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver sets the telemetry observer.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithAssertions makes contract violations panic with an *errors.InvariantError
// instead of being logged.
func WithAssertions(enabled bool) Option {
	return func(o *options) { o.assertions = enabled }
}

func buildOptions(opts []Option) options {
	o := options{name: "flow", logger: nopLogger{}, observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Handler maps an action arriving anywhere in a flow to the navigation command
// it triggers. Returning false means no navigation, the common case.
type Handler[R Identifiable, RA any, A any] func(action Action[R, RA, A]) (Command[R], bool)

// Router is the reducer of one flow. It bridges actions to navigation commands
// through its Handler and forwards every action to the root or route reducer
// it is addressed to.
type Router[R Identifiable, RA any, S Identifiable, A any] struct {
	handler Handler[R, RA, A]
	root    Reducer[S, A]
	routes  Reducer[R, RA]
	opts    options
}

// NewRouter creates a flow reducer. root reduces the root screen and routes
// reduces every stacked or modal route, usually a Combine of Case reducers.
func NewRouter[R Identifiable, RA any, S Identifiable, A any](
	handler Handler[R, RA, A],
	root Reducer[S, A],
	routes Reducer[R, RA],
	opts ...Option,
) *Router[R, RA, S, A] {
	if root == nil {
		root = ReducerFunc[S, A](func(*S, A) {})
	}
	if routes == nil {
		routes = ReducerFunc[R, RA](func(*R, RA) {})
	}
	return &Router[R, RA, S, A]{
		handler: handler,
		root:    root,
		routes:  routes,
		opts:    buildOptions(opts),
	}
}

// Name returns the flow label.
func (r *Router[R, RA, S, A]) Name() string {
	return r.opts.name
}

// Reduce handles one action: the handler's command, if any, is applied first
// and the action is then forwarded to its target within the same call.
func (r *Router[R, RA, S, A]) Reduce(state *State[R, S], action Action[R, RA, A]) {
	if r.handler != nil {
		if cmd, ok := r.handler(action); ok {
			r.apply(&state.Navigation, cmd)
		}
	}

	switch action.Kind {
	case ActionNavigation:
		r.apply(&state.Navigation, action.Command)
	case ActionRoot:
		r.root.Reduce(&state.Root, action.Root)
	case ActionRoute:
		updated := state.Navigation.UpdateRoute(action.ID, func(route *R) {
			r.routes.Reduce(route, action.Route)
		})
		if !updated {
			r.drop(action, "route not on stack")
		}
	case ActionModalRoute:
		updated := state.Navigation.UpdateModal(func(route *R) {
			r.routes.Reduce(route, action.Route)
		})
		if !updated {
			r.drop(action, "no modal presented")
		}
	default:
		r.drop(action, "empty action")
	}
}

func (r *Router[R, RA, S, A]) apply(nav *Navigation[R], cmd Command[R]) {
	if err := nav.Check(cmd); err != nil {
		var invErr *navflowerrors.InvariantError
		if errors.As(err, &invErr) {
			invErr.Flow = r.opts.name
		}
		if r.opts.assertions {
			panic(err)
		}
		r.opts.logger.Warn("navigation invariant violated", "flow", r.opts.name, "command", cmd.String(), "error", err)
	}

	changed := nav.Apply(cmd)
	_, hasModal := nav.Modal()
	r.opts.observer.CommandApplied(r.opts.name, cmd.Kind, changed, nav.Depth(), hasModal)
	r.opts.logger.Debug("navigation command applied",
		"flow", r.opts.name,
		"command", cmd.String(),
		"changed", changed,
		"phase", nav.PhaseString(),
	)
}

func (r *Router[R, RA, S, A]) drop(action Action[R, RA, A], reason string) {
	r.opts.observer.ActionDropped(r.opts.name, action.Kind)
	r.opts.logger.Debug("action dropped", "flow", r.opts.name, "action", action.String(), "reason", reason)
}
