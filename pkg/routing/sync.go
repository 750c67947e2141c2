package routing

import "slices"

// Presenter is a presentation layer that keeps its own back stack of screens
// above the flow's root, such as a platform navigation controller.
// Implementations must be comparable; Synchronizer keys its side table by
// presenter identity, so pointer receivers are the usual choice.
type Presenter interface {
	// PushScreen shows the screen for the route with the given id.
	PushScreen(id ID)
	// PopScreens removes screens until depth screens remain.
	PopScreens(depth int)
	// Depth returns the number of screens currently shown above the root.
	Depth() int
}

// Synchronizer reconciles presenters with a flow's stack. It tracks, per
// presenter, the ids that presenter was last told to show.
//
// Synchronizer is not safe for concurrent use; drive it from the same loop
// that dispatches actions.
type Synchronizer struct {
	tracked map[Presenter]Path
}

// NewSynchronizer creates an empty Synchronizer.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{tracked: make(map[Presenter]Path)}
}

// Attach starts tracking a presenter that already shows path.
func (s *Synchronizer) Attach(p Presenter, path Path) {
	s.tracked[p] = slices.Clone(path)
}

// Detach stops tracking a presenter.
func (s *Synchronizer) Detach(p Presenter) {
	delete(s.tracked, p)
}

// Tracked returns the ids the presenter is known to show.
func (s *Synchronizer) Tracked(p Presenter) (Path, bool) {
	path, ok := s.tracked[p]
	return slices.Clone(path), ok
}

// Sync drives the presenter towards stack. Screens past the common prefix are
// popped, then missing screens are pushed in order. The stack always wins.
// It reports whether the presenter was changed.
func (s *Synchronizer) Sync(p Presenter, stack Path) bool {
	current, ok := s.tracked[p]
	if !ok {
		current = Path{}
	}
	if current.Equal(stack) {
		return false
	}

	prefix := current.CommonPrefix(stack)
	if len(current) > prefix {
		p.PopScreens(prefix)
	}
	for _, id := range stack[prefix:] {
		p.PushScreen(id)
	}
	s.tracked[p] = slices.Clone(stack)
	return true
}

// DidShow is called after the presenter changed on its own, for example when
// a user completed a back gesture. When the presenter now shows fewer screens
// than tracked, the tracked ids are trimmed and the resulting path is returned
// so it can be fed to UpdatePath.
func (s *Synchronizer) DidShow(p Presenter) (Path, bool) {
	current, ok := s.tracked[p]
	if !ok {
		return nil, false
	}
	depth := p.Depth()
	if depth >= len(current) {
		return nil, false
	}
	trimmed := current.Trim(len(current) - depth)
	s.tracked[p] = trimmed
	return trimmed.Trim(0), true
}
