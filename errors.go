package rex

import (
	"errors"
	"fmt"
)

// Common pattern errors.
var (
	// ErrTooManyRegions indicates the pattern contains more region marks
	// than Config.MaxSegments allows.
	ErrTooManyRegions = errors.New("too many region marks in pattern")
)

// PatternError wraps a pattern that could not be compiled, including marked
// patterns whose segments fail to compile in some combination.
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("rex: cannot compile pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Err
}
