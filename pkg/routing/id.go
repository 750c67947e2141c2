package routing

import (
	"reflect"

	"github.com/google/uuid"
)

// ID identifies a routed state. It is minted once when the state is
// constructed and never changes afterwards.
type ID = uuid.UUID

// NewID mints a fresh random ID.
func NewID() ID {
	return uuid.New()
}

// Identifiable is implemented by every payload placed in a route. RouteID must
// return the payload's own stored id, so the same screen type pushed twice
// yields two distinct routes.
type Identifiable interface {
	RouteID() ID
}

// Equal reports structural equality over the full state of two values.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

func shortID(id ID) string {
	return id.String()[:8]
}
