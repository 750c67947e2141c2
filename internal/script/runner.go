package script

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/navflow/internal/flows/landingflow"
	"github.com/alexisbeaulieu97/navflow/internal/logger"
	"github.com/alexisbeaulieu97/navflow/internal/screens/landing"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// Record is the state of the landing flow after one step.
type Record struct {
	Step      int      `json:"step"`
	Input     string   `json:"input"`
	Screen    string   `json:"screen,omitempty"`
	Phase     string   `json:"phase"`
	Stack     []string `json:"stack"`
	Modal     string   `json:"modal,omitempty"`
	Presenter int      `json:"presenter_depth"`
}

// Options configures a run.
type Options struct {
	Logger     *logger.Logger
	Observer   routing.Observer
	Assertions bool
}

// Runner executes scripts against a fresh landing flow.
type Runner struct {
	store     *landingflow.Store
	presenter *backStack
	sync      *routing.Synchronizer
	log       *logger.Logger
}

// NewRunner creates a runner with a fresh store whose stack is mirrored onto
// a headless presenter after every dispatch.
func NewRunner(opts Options) *Runner {
	routerOpts := []routing.Option{
		routing.WithLogger(opts.Logger),
		routing.WithAssertions(opts.Assertions),
	}
	if opts.Observer != nil {
		routerOpts = append(routerOpts, routing.WithObserver(opts.Observer))
	}

	r := &Runner{
		store:     landingflow.NewStore(routerOpts...),
		presenter: &backStack{},
		sync:      routing.NewSynchronizer(),
		log:       opts.Logger,
	}
	r.sync.Attach(r.presenter, nil)
	r.store.Subscribe(func(s landingflow.State) {
		r.sync.Sync(r.presenter, s.Navigation.Path())
	})
	return r
}

// Store exposes the runner's store.
func (r *Runner) Store() *landingflow.Store {
	return r.store
}

// Run executes every step in order and returns one record per step. It stops
// at the first step that cannot be applied.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Record, error) {
	records := make([]Record, 0, len(s.Steps))
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		screen, err := r.apply(step)
		if err != nil {
			r.log.Error(err, "script step failed", "script", s.Name, "step", i+1, "input", step.String())
			return records, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}

		record := r.record(i+1, step, screen)
		r.log.Debug("script step applied", "script", s.Name, "step", record.Step, "phase", record.Phase)
		records = append(records, record)
	}
	return records, nil
}

func (r *Runner) apply(step Step) (string, error) {
	if step.Back != nil {
		r.back(*step.Back)
		return "", nil
	}

	target, err := resolveFlow(r.store.State(), "landing", landing.Actions, strings.Split(step.Target, "/"))
	if err != nil {
		return "", err
	}
	action, err := target.catalog.Parse(target.screen, step.Action, step.Text)
	if err != nil {
		return "", err
	}
	r.store.Dispatch(target.wrap(action).(landingflow.Action))
	return target.screen, nil
}

// back simulates a gesture the flow did not initiate. The presenter changes
// first and the store learns about it through the external path.
func (r *Runner) back(n int) {
	if n < 0 {
		r.store.UpdateExternalPath(nil)
		return
	}
	r.presenter.back(n)
	if path, ok := r.sync.DidShow(r.presenter); ok {
		r.store.UpdateExternalPath(path)
	}
}

func (r *Runner) record(step int, input Step, screen string) Record {
	state := r.store.State()
	record := Record{
		Step:      step,
		Input:     input.String(),
		Screen:    screen,
		Phase:     state.Navigation.PhaseString(),
		Stack:     []string{},
		Presenter: r.presenter.Depth(),
	}
	for _, route := range state.Navigation.Routes() {
		record.Stack = append(record.Stack, landingflow.RouteName(route))
	}
	if m, ok := state.Navigation.Modal(); ok {
		record.Modal = landingflow.RouteName(m)
	}
	return record
}

// Run executes s against a fresh landing flow.
func Run(ctx context.Context, s *Script, opts Options) ([]Record, error) {
	return NewRunner(opts).Run(ctx, s)
}

// WriteText writes records as aligned human-readable lines.
func WriteText(w io.Writer, records []Record) error {
	for _, r := range records {
		line := fmt.Sprintf("%02d  %-34s %-18s stack=[%s]", r.Step, r.Input, r.Phase, strings.Join(r.Stack, " "))
		if r.Modal != "" {
			line += " modal=" + r.Modal
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes records as JSON lines.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
