package funcs

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrFunctionNotFound is returned when a name has no entry in the table for
// the requested shape.
var ErrFunctionNotFound = errors.New("function not found")

// NotFoundError carries the name and shape of a failed lookup. It matches
// ErrFunctionNotFound with errors.Is.
type NotFoundError struct {
	Name  string
	Shape Shape
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrFunctionNotFound, e.Name, e.Shape)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrFunctionNotFound
}

// TypeError reports a parameter or result whose dynamic type does not match
// the type the function was registered with.
type TypeError struct {
	Func string
	Role string // "parameter" or "result"
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("function %q: %s type mismatch: want %s, got %s", e.Func, e.Role, e.Want, got)
}
