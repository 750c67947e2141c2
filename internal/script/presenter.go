package script

import "github.com/alexisbeaulieu97/navflow/pkg/routing"

// backStack is a headless presenter: a list of shown screens that a user can
// pop on their own.
type backStack struct {
	screens []routing.ID
}

func (b *backStack) PushScreen(id routing.ID) {
	b.screens = append(b.screens, id)
}

func (b *backStack) PopScreens(depth int) {
	b.screens = b.screens[:min(max(depth, 0), len(b.screens))]
}

func (b *backStack) Depth() int {
	return len(b.screens)
}

// back removes up to n screens as a back gesture would.
func (b *backStack) back(n int) {
	b.PopScreens(len(b.screens) - n)
}
