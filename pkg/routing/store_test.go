package routing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(opts ...Option) *Store[page, any, home, any] {
	return NewStore[page, any, home, any](newTestState(), newTestRouter(opts...))
}

func TestStoreDispatchNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	var depths []int
	cancel := store.Subscribe(func(s testState) {
		depths = append(depths, s.Navigation.Depth())
	})

	store.Dispatch(rootAct(openA{}))
	store.Send(rootAct(openA{}))
	cancel()
	store.Dispatch(rootAct(openA{}))

	assert.Equal(t, []int{1, 2}, depths)
	assert.Equal(t, uint64(3), store.Dispatched())
	assert.Len(t, store.Stack(), 3)
}

func TestStoreSubscribersRunInOrder(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	var calls []string
	store.Subscribe(func(testState) { calls = append(calls, "first") })
	cancel := store.Subscribe(func(testState) { calls = append(calls, "second") })
	store.Subscribe(func(testState) { calls = append(calls, "third") })
	cancel()

	store.Dispatch(rootAct(bump{}))
	assert.Equal(t, []string{"first", "third"}, calls)
}

func TestStoreSubscriberMayDispatch(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	store.Subscribe(func(s testState) {
		if s.Navigation.Depth() == 1 {
			top, _ := s.Navigation.Stack().Peek()
			store.Dispatch(routeAct(top.RouteID(), openB{}))
		}
	})

	store.Dispatch(rootAct(openA{}))
	assert.Equal(t, 2, store.State().Navigation.Depth())
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	store.Dispatch(rootAct(openA{}))
	before := store.State()

	top, _ := before.Navigation.Stack().Peek()
	store.Dispatch(routeAct(top.RouteID(), setText{Text: "changed"}))
	store.Dispatch(routeAct(top.RouteID(), openB{}))

	assert.Equal(t, 1, before.Navigation.Depth())
	kept, _ := before.Navigation.Stack().Peek()
	assert.Equal(t, "", kept.(pageA).Text)
}

func TestStoreConcurrentDispatchIsSerialized(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	const workers = 32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(rootAct(openA{}))
		}()
	}
	wg.Wait()

	state := store.State()
	assert.Equal(t, workers, state.Navigation.Depth())
	assert.Equal(t, workers, state.Root.Presses)
	assert.Equal(t, uint64(workers), store.Dispatched())
}

func TestStorePathBinding(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	store.Dispatch(rootAct(openA{}))
	store.Dispatch(rootAct(openA{}))

	binding := store.PathBinding()
	path := binding.Get()
	require.Len(t, path, 2)

	binding.Set(path.Trim(1))
	assert.Equal(t, path[:1], binding.Get())

	binding.Set(nil)
	assert.Len(t, binding.Get(), 1)
}

func TestStoreModal(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	_, ok := store.Modal()
	assert.False(t, ok)

	store.Dispatch(rootAct(showA{}))
	modal, ok := store.Modal()
	require.True(t, ok)
	assert.IsType(t, pageA{}, modal)
}

func TestStoreAssertionPanicReleasesLock(t *testing.T) {
	t.Parallel()

	store := newTestStore(WithAssertions(true))
	a := newPageA()
	store.Dispatch(navAct(Push[page](a)))

	require.Panics(t, func() { store.Dispatch(navAct(Push[page](a))) })
	assert.Equal(t, 1, store.State().Navigation.Depth())
}

func TestStoreZeroActionIsNoOp(t *testing.T) {
	t.Parallel()

	observer := &recordingObserver{}
	store := newTestStore(WithObserver(observer), WithAssertions(true))
	store.Dispatch(rootAct(openA{}))
	before := store.State()

	require.NotPanics(t, func() { store.Dispatch(testAction{}) })
	require.NotPanics(t, func() { store.Dispatch(navAct(Command[page]{})) })

	after := store.State()
	assert.True(t, before.Navigation.Equal(after.Navigation))
	assert.Equal(t, before.Root, after.Root)
	assert.Equal(t, []ActionKind{ActionNone}, observer.dropped)
}
