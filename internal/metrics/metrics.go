// Package metrics exports navigation telemetry to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"

	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// Collector records router telemetry. It implements routing.Observer.
type Collector struct {
	registry *prometheus.Registry

	CommandsTotal  *prometheus.CounterVec
	StackDepth     *prometheus.GaugeVec
	ModalActive    *prometheus.GaugeVec
	DroppedActions *prometheus.CounterVec

	commands atomic.Uint64
	dropped  atomic.Uint64
}

var _ routing.Observer = (*Collector)(nil)

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "navflow",
				Subsystem: "navigation",
				Name:      "commands_total",
				Help:      "Navigation commands applied, by flow, kind and whether the state changed",
			},
			[]string{"flow", "kind", "changed"},
		),

		StackDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "navflow",
				Subsystem: "navigation",
				Name:      "stack_depth",
				Help:      "Number of routes on the flow's stack",
			},
			[]string{"flow"},
		),

		ModalActive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "navflow",
				Subsystem: "navigation",
				Name:      "modal_active",
				Help:      "Whether the flow presents a modal (0=no, 1=yes)",
			},
			[]string{"flow"},
		),

		DroppedActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "navflow",
				Subsystem: "navigation",
				Name:      "dropped_actions_total",
				Help:      "Actions addressed to a route that no longer exists",
			},
			[]string{"flow", "kind"},
		),
	}

	c.registry.MustRegister(c.CommandsTotal, c.StackDepth, c.ModalActive, c.DroppedActions)
	return c
}

// Registry returns the registry the collector writes to.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CommandApplied records one navigation command.
func (c *Collector) CommandApplied(flow string, kind routing.CommandKind, changed bool, depth int, modal bool) {
	c.CommandsTotal.WithLabelValues(flow, kind.String(), strconv.FormatBool(changed)).Inc()
	c.commands.Inc()
	c.StackDepth.WithLabelValues(flow).Set(float64(depth))

	value := 0.0
	if modal {
		value = 1.0
	}
	c.ModalActive.WithLabelValues(flow).Set(value)
}

// ActionDropped records an action whose target was gone.
func (c *Collector) ActionDropped(flow string, kind routing.ActionKind) {
	c.DroppedActions.WithLabelValues(flow, kind.String()).Inc()
	c.dropped.Inc()
}

// Totals returns the number of commands applied and actions dropped across
// all flows.
func (c *Collector) Totals() (commands, dropped uint64) {
	return c.commands.Load(), c.dropped.Load()
}

// Handler returns the HTTP handler serving the collector's metrics.
func (c *Collector) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server on %s: %w", addr, err)
		}
		return nil
	}
}
