package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

func TestCollectorRecordsCommands(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.CommandApplied("landing", routing.CommandPush, true, 1, false)
	c.CommandApplied("landing", routing.CommandPush, true, 2, false)
	c.CommandApplied("landing", routing.CommandDismiss, false, 2, false)
	c.CommandApplied("modal", routing.CommandPresent, true, 0, true)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.CommandsTotal.WithLabelValues("landing", "push", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CommandsTotal.WithLabelValues("landing", "dismiss", "false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.StackDepth.WithLabelValues("landing")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.ModalActive.WithLabelValues("landing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ModalActive.WithLabelValues("modal")))
}

func TestCollectorRecordsDrops(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.ActionDropped("landing", routing.ActionRoute)
	c.ActionDropped("landing", routing.ActionRoute)
	c.ActionDropped("landing", routing.ActionModalRoute)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.DroppedActions.WithLabelValues("landing", "route")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DroppedActions.WithLabelValues("landing", "modal_route")))
}

func TestCollectorTotals(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	commands, dropped := c.Totals()
	assert.Zero(t, commands)
	assert.Zero(t, dropped)

	c.CommandApplied("landing", routing.CommandPush, true, 1, false)
	c.CommandApplied("modal", routing.CommandDismiss, false, 0, false)
	c.ActionDropped("landing", routing.ActionNone)

	commands, dropped = c.Totals()
	assert.Equal(t, uint64(2), commands)
	assert.Equal(t, uint64(1), dropped)
}

type leaf struct{ id routing.ID }

func (p leaf) RouteID() routing.ID { return p.id }

type leafAction = routing.Action[leaf, any, any]

func TestCollectorObservesRouter(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	router := routing.NewRouter[leaf, any, leaf, any](
		func(action leafAction) (routing.Command[leaf], bool) {
			if action.Kind == routing.ActionRoot {
				return routing.Push(leaf{id: routing.NewID()}), true
			}
			return routing.Command[leaf]{}, false
		},
		nil, nil,
		routing.WithName("leaf"), routing.WithObserver(c),
	)

	state := routing.NewState[leaf](leaf{id: routing.NewID()})
	router.Reduce(&state, routing.RootAction[leaf, any](any("go")))
	router.Reduce(&state, routing.RouteAction[leaf, any](routing.NewID(), any("lost")))

	require.Equal(t, 1.0, testutil.ToFloat64(c.CommandsTotal.WithLabelValues("leaf", "push", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.StackDepth.WithLabelValues("leaf")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.DroppedActions.WithLabelValues("leaf", "route")))
}

func TestHandlerServesMetrics(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.CommandApplied("landing", routing.CommandPop, true, 0, false)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `navflow_navigation_commands_total{changed="true",flow="landing",kind="pop"} 1`), body)

	rec = httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, NewCollector().Serve(ctx, "127.0.0.1:0"))
}
