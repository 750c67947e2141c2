package landing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReducer(t *testing.T) {
	t.Parallel()

	state := New()
	var r Reducer

	r.Reduce(&state, SetText{Text: "hello"})
	require.Equal(t, "hello", state.Text)

	r.Reduce(&state, PresentModal{})
	require.Equal(t, "hello", state.Text)

	r.Reduce(&state, PushFirst{})
	require.Empty(t, state.Text)
}

func TestActions(t *testing.T) {
	t.Parallel()

	action, err := Actions.Parse("landing", "set_text", "typed")
	require.NoError(t, err)
	require.Equal(t, SetText{Text: "typed"}, action)
	require.Equal(t, []string{"present_modal", "push_first", "set_text"}, Actions.Names())
}
