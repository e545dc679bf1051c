package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the groupsum domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("groupsum: invalid integer")

	// ErrEmptyInput is returned when a payload contains no groups, so no
	// maximum is defined.
	ErrEmptyInput = errors.New("groupsum: no groups in input")

	// ErrInsufficientGroups is returned by a strict top-k selection when the
	// payload has fewer than k groups.
	ErrInsufficientGroups = errors.New("groupsum: not enough groups")

	// ErrOverflow is returned when a sum does not fit in 64 bits.
	ErrOverflow = errors.New("groupsum: sum overflows uint64")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("groupsum: invalid configuration")
)

// ParseError reports a payload line that is not a non-negative decimal integer.
type ParseError struct {
	// Line is the 1-based line number within the payload.
	Line int

	// Text is the offending line with surrounding whitespace removed.
	Text string

	// Err is the underlying strconv error, if any.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("groupsum: line %d: invalid integer %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
