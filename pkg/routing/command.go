package routing

import "fmt"

// CommandKind enumerates navigation commands.
type CommandKind int

const (
	// CommandNone is the zero kind; applying it changes nothing.
	CommandNone CommandKind = iota
	CommandPush
	CommandPop
	CommandPresent
	CommandDismiss
	CommandUpdatePath
)

// String returns the lowercase command name.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandPush:
		return "push"
	case CommandPop:
		return "pop"
	case CommandPresent:
		return "present"
	case CommandDismiss:
		return "dismiss"
	case CommandUpdatePath:
		return "update_path"
	default:
		return "unknown"
	}
}

// Command is a navigation command applied to a flow's Navigation.
//
// Route is set for push and present. Count is the number of routes a pop
// removes; ToRoot pops everything. Path is the external path for update_path.
type Command[R Identifiable] struct {
	Kind   CommandKind
	Route  R
	Count  int
	ToRoot bool
	Path   Path
}

// Push returns a command appending route to the stack.
func Push[R Identifiable](route R) Command[R] {
	return Command[R]{Kind: CommandPush, Route: route}
}

// Pop returns a command removing the top route.
func Pop[R Identifiable]() Command[R] {
	return Command[R]{Kind: CommandPop, Count: 1}
}

// PopN returns a command removing up to n routes from the top.
func PopN[R Identifiable](n int) Command[R] {
	return Command[R]{Kind: CommandPop, Count: n}
}

// PopToRoot returns a command clearing the stack.
func PopToRoot[R Identifiable]() Command[R] {
	return Command[R]{Kind: CommandPop, ToRoot: true}
}

// Present returns a command showing route modally, replacing any current modal.
func Present[R Identifiable](route R) Command[R] {
	return Command[R]{Kind: CommandPresent, Route: route}
}

// Dismiss returns a command clearing the modal.
func Dismiss[R Identifiable]() Command[R] {
	return Command[R]{Kind: CommandDismiss}
}

// UpdatePath returns a command reconciling the stack with an externally
// observed path. A nil path is treated as transient and ignored.
func UpdatePath[R Identifiable](path Path) Command[R] {
	return Command[R]{Kind: CommandUpdatePath, Path: path}
}

func (c Command[R]) String() string {
	switch c.Kind {
	case CommandPush, CommandPresent:
		return fmt.Sprintf("%s(%s)", c.Kind, describe(c.Route))
	case CommandPop:
		if c.ToRoot {
			return "pop(root)"
		}
		return fmt.Sprintf("pop(%d)", c.Count)
	case CommandUpdatePath:
		if c.Path == nil {
			return "update_path(nil)"
		}
		return fmt.Sprintf("update_path(%d)", len(c.Path))
	default:
		return c.Kind.String()
	}
}

// Describe renders a route as "<type>(<short id>)".
func Describe(route Identifiable) string {
	return describe(route)
}

func describe(route Identifiable) string {
	if route == nil {
		return "<none>"
	}
	if named, ok := route.(interface{ RouteName() string }); ok {
		return fmt.Sprintf("%s(%s)", named.RouteName(), shortID(route.RouteID()))
	}
	return fmt.Sprintf("%T(%s)", route, shortID(route.RouteID()))
}
