package di

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when resolving a name with no registered provider.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("di: no provider registered for [%s]", e.Name)
}

// CircularDependencyError is returned when two or more providers reference
// each other through nested provider arguments, which would otherwise
// recurse without bound. Break the cycle with a deferred reference on at
// least one side.
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return "di: circular dependency detected"
	}
	return fmt.Sprintf("di: circular dependency detected: %s", strings.Join(e.Path, " -> "))
}

// ArgumentError is returned when a factory asks for an argument that was
// neither bound at registration time nor supplied at call time.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("di: no argument named [%s]", e.Name)
}
