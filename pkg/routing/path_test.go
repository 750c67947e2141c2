package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayNonNilReplaysLastPresent(t *testing.T) {
	t.Parallel()

	type result struct {
		value string
		ok    bool
	}
	sequence := []result{{"a", true}, {}, {}, {"b", true}, {}}
	call := 0
	lookup := ReplayNonNil(func(int) (string, bool) {
		r := sequence[call]
		call++
		return r.value, r.ok
	})

	var got []string
	for range sequence {
		v, ok := lookup(0)
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "a", "a", "b", "b"}, got)
}

func TestReplayNonNilBeforeFirstValue(t *testing.T) {
	t.Parallel()

	lookup := ReplayNonNil(func(string) (int, bool) { return 0, false })
	v, ok := lookup("missing")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestReplayNonNilWrappersAreIndependent(t *testing.T) {
	t.Parallel()

	present := true
	base := func(n int) (int, bool) { return n, present }
	first := ReplayNonNil(base)
	second := ReplayNonNil(base)

	v, ok := first(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	present = false
	_, ok = second(2)
	assert.False(t, ok, "second wrapper must not see the first wrapper's cache")

	v, ok = first(3)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPathTrim(t *testing.T) {
	t.Parallel()

	a, b, c := NewID(), NewID(), NewID()
	p := Path{a, b, c}

	assert.Equal(t, Path{a}, p.Trim(2))
	assert.Equal(t, Path{a, b, c}, p.Trim(0))
	assert.Equal(t, Path{a, b, c}, p.Trim(-1))

	empty := p.Trim(10)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	var absent Path
	assert.Nil(t, absent.Trim(1))

	trimmed := p.Trim(1)
	trimmed[0] = c
	assert.Equal(t, a, p[0], "trim returns a copy")
}

func TestPathCommonPrefix(t *testing.T) {
	t.Parallel()

	a, b, c := NewID(), NewID(), NewID()

	assert.Equal(t, 2, Path{a, b, c}.CommonPrefix(Path{a, b}))
	assert.Equal(t, 1, Path{a, b}.CommonPrefix(Path{a, c}))
	assert.Equal(t, 0, Path{b}.CommonPrefix(Path{a}))
	assert.Equal(t, 0, Path{}.CommonPrefix(Path{a}))
	assert.True(t, Path{a, b}.Equal(Path{a, b}))
	assert.False(t, Path{a, b}.Equal(Path{b, a}))
}
