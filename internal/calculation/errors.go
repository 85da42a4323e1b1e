package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks user-correctable input problems (degenerate goal
// factor, non-positive yield, non-positive term, non-positive total weight).
// Callers test with errors.Is and show the wrapped message directly.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
