// Package screens holds what the sample screens share: a catalog mapping
// action names, as typed in scripts and shown in help, to action values.
package screens

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownAction is returned when a screen has no action of the given name.
var ErrUnknownAction = errors.New("unknown action")

// Catalog maps action names to constructors. The text argument is only read
// by actions that carry input, such as set_text.
type Catalog map[string]func(text string) any

// Parse builds the named action.
func (c Catalog) Parse(screen, name, text string) (any, error) {
	build, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q (want one of %s)", screen, ErrUnknownAction, name, strings.Join(c.Names(), ", "))
	}
	return build(text), nil
}

// Names returns the action names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
