package routing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringRenderer struct{}

func (stringRenderer) RenderRoot(root home, _ func(any)) string {
	return "home:" + root.Text
}

func (stringRenderer) RenderRoute(route page, _ func(any)) string {
	switch r := route.(type) {
	case pageA:
		return "a:" + r.Text
	case pageB:
		return fmt.Sprintf("b:%d", r.Count)
	default:
		return "?"
	}
}

func renderString(view *View[page, any, home, any]) Frame[string] {
	return Render[page, any, home, any, string](view, stringRenderer{})
}

func TestViewRouteReplaysAfterPop(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	view := ViewOf(store)
	view.SendRoot(openA{})
	id := view.Path()[0]

	_, send, ok := view.Route(id)
	require.True(t, ok)
	send(setText{Text: "leaving"})

	route, _, ok := view.Route(id)
	require.True(t, ok)
	require.Equal(t, "leaving", route.(pageA).Text)

	view.SendRoute(id, goBack{})
	require.Empty(t, view.Path())

	route, _, ok = view.Route(id)
	require.True(t, ok, "popped route keeps its last state")
	assert.Equal(t, "leaving", route.(pageA).Text)

	view.Release(id)
	_, _, ok = view.Route(id)
	assert.False(t, ok)

	_, _, ok = view.Route(NewID())
	assert.False(t, ok)
}

func TestViewModalReplayAndPresenting(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	view := ViewOf(store)
	assert.False(t, view.Presenting())
	_, _, ok := view.Modal()
	assert.False(t, ok)

	view.SendRoot(showA{})
	_, send, ok := view.Modal()
	require.True(t, ok)
	send(setText{Text: "sheet"})

	// drawn once more with the new text before it is dismissed
	modal, _, ok := view.Modal()
	require.True(t, ok)
	require.Equal(t, "sheet", modal.(pageA).Text)

	view.SendModal(closeTop{})
	assert.False(t, view.Presenting())
	modal, _, ok = view.Modal()
	require.True(t, ok, "dismissed sheet keeps rendering while it closes")
	assert.Equal(t, "sheet", modal.(pageA).Text)
}

func TestRenderFrame(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	view := ViewOf(store)

	frame := renderString(view)
	assert.Equal(t, "home:", frame.Top())
	assert.Empty(t, frame.Stack)

	view.SendRoot(setText{Text: "x"})
	view.SendRoot(openA{})
	a := view.Path()[0]
	view.SendRoute(a, openB{})
	b := view.Path()[1]
	view.SendRoute(b, bump{})

	frame = renderString(view)
	assert.Equal(t, "home:", frame.Root)
	assert.Equal(t, []string{"a:", "b:1"}, frame.Stack)
	assert.Equal(t, "b:1", frame.Top())

	view.Navigate(Present[page](pageA{ID: NewID(), Text: "modal"}))
	frame = renderString(view)
	require.True(t, frame.HasModal)
	assert.Equal(t, "a:modal", frame.Top())

	view.Navigate(Dismiss[page]())
	frame = renderString(view)
	assert.False(t, frame.HasModal)
	assert.Equal(t, "b:1", frame.Top())
}

func TestViewChildIsRetainedUntilRelease(t *testing.T) {
	t.Parallel()

	view := ViewOf(newTestStore())
	id := NewID()
	builds := 0
	build := func() any {
		builds++
		return builds
	}

	assert.Equal(t, 1, view.Child(id, build))
	assert.Equal(t, 1, view.Child(id, build))
	view.Release(id)
	assert.Equal(t, 2, view.Child(id, build))
}

func TestViewRootSend(t *testing.T) {
	t.Parallel()

	view := ViewOf(newTestStore())
	_, send := view.Root()
	send(setText{Text: "typed"})

	root, _ := view.Root()
	assert.Equal(t, "typed", root.Text)
	assert.Len(t, view.Stack(), 0)
	assert.Equal(t, 0, view.State().Navigation.Depth())
}
