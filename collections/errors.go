package collections

import (
	"errors"

	"github.com/hasbyte1/go-range-utils/ranges"
)

// Sentinel errors returned by Collection and sequence operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the sequence is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside
	// [-Count(), Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNoMatchingItems is returned by FindOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("collections: chunk size must be greater than 0")

	// ErrZeroStep is returned by [Collection.Slice] for a step of 0.
	ErrZeroStep = ranges.ErrZeroStep
)
