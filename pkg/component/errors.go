package component

import (
	"errors"
	"fmt"
)

// ErrArgument matches every ArgumentError through errors.Is.
var ErrArgument = errors.New("component: invalid argument")

// ArgumentError reports a call with an invalid shape, such as too many
// arguments or a positional attribute list.
type ArgumentError struct {
	Op     string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Op == "" {
		return "component: " + e.Reason
	}
	return fmt.Sprintf("component: %s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func argumentError(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
