package tui

import "github.com/alexisbeaulieu97/navflow/pkg/routing"

// screenStack is the terminal's own back stack above the landing screen. It
// remembers which screens were popped so their last frame can fade out.
type screenStack struct {
	shown  []routing.ID
	popped []routing.ID
}

func (s *screenStack) PushScreen(id routing.ID) {
	s.shown = append(s.shown, id)
}

func (s *screenStack) PopScreens(depth int) {
	depth = min(max(depth, 0), len(s.shown))
	s.popped = append(s.popped, s.shown[depth:]...)
	s.shown = s.shown[:depth]
}

func (s *screenStack) Depth() int {
	return len(s.shown)
}

// back pops the top screen the way a user gesture would.
func (s *screenStack) back() bool {
	if len(s.shown) == 0 {
		return false
	}
	s.PopScreens(len(s.shown) - 1)
	return true
}

func (s *screenStack) drainPopped() []routing.ID {
	popped := s.popped
	s.popped = nil
	return popped
}
