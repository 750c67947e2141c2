package routing

import "slices"

// Path is an ordered list of route ids as observed by a presentation layer.
// A nil Path is absent: presenters may report one mid-transition and it is
// ignored. An empty, non-nil Path means every route was popped.
type Path []ID

// Equal reports whether two paths hold the same ids in the same order.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// CommonPrefix returns the number of leading ids p and other share.
func (p Path) CommonPrefix(other Path) int {
	n := min(len(p), len(other))
	for i := 0; i < n; i++ {
		if p[i] != other[i] {
			return i
		}
	}
	return n
}

// Trim returns a copy of p without its last n ids. Trimming more than
// len(p) yields an empty, non-nil path; trimming a nil path yields nil.
func (p Path) Trim(n int) Path {
	if p == nil {
		return nil
	}
	keep := max(len(p)-max(n, 0), 0)
	out := make(Path, keep)
	copy(out, p)
	return out
}

// ReplayNonNil wraps a lookup so that an absent result returns the last
// present result instead. It smooths over presenters asking to render a route
// whose state was already removed while its pop transition is still in
// flight. Every call returns a wrapper with its own independent cache.
func ReplayNonNil[A any, B any](lookup func(A) (B, bool)) func(A) (B, bool) {
	var (
		last    B
		hasLast bool
	)
	return func(input A) (B, bool) {
		if output, ok := lookup(input); ok {
			last = output
			hasLast = true
			return output, true
		}
		return last, hasLast
	}
}

// PathBinding is an explicit getter/setter pair for a flow's path. Get
// returns the current stack ids; Set reports an externally observed path.
type PathBinding struct {
	Get func() Path
	Set func(Path)
}
