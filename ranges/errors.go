package ranges

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Range construction, indexing and slicing.
//
// Use [errors.Is] for comparisons:
//
//	if _, err := r.Index(i); errors.Is(err, ranges.ErrIndexOutOfRange) {
//	    // i was outside [-Len(), Len())
//	}
var (
	// ErrArity is returned by [Of] and [Parse] when called with no arguments
	// or with more than three.
	ErrArity = errors.New("wrong number of range arguments")

	// ErrTypeKind is returned by [Parse] when an argument is not an integer.
	ErrTypeKind = errors.New("range indices must all be integers")

	// ErrZeroStep is returned when a range or a slice is given a step of 0.
	ErrZeroStep = errors.New("step must not be zero")

	// ErrIndexOutOfRange is wrapped by every [*IndexError].
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports an index outside [-Len, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range", e.Index)
}

// Unwrap lets errors.Is match [ErrIndexOutOfRange].
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// ArityError reports how many arguments [Of] or [Parse] received.
type ArityError struct {
	Got int
}

func (e *ArityError) Error() string {
	if e.Got < 1 {
		return fmt.Sprintf("range expected at least 1 argument, got %d", e.Got)
	}
	return fmt.Sprintf("range expected at most 3 arguments, got %d", e.Got)
}

// Unwrap lets errors.Is match [ErrArity].
func (e *ArityError) Unwrap() error { return ErrArity }
