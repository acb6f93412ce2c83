package collections

import "iter"

// Iterable is anything that can produce a restartable sequence of T.
//
// Each call to All must return a sequence that starts from the beginning,
// independent of any earlier call. [ranges.Range] and [*Collection] both
// satisfy it.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Seq returns src.All(). It exists so helpers can be called on an Iterable
// without spelling out the method.
func Seq[T any](src Iterable[T]) iter.Seq[T] { return src.All() }
