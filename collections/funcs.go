package collections

import (
	"iter"
	"slices"
)

// This file contains the sequence helpers. They accept an iter.Seq so that
// any source (a ranges.Range, a Collection, a slice via Values) can feed them:
//
//	evens := collections.Filter(ranges.To(10).All(), func(n, _ int) bool { return n%2 == 0 })
//	sum   := collections.Reduce(evens, func(acc, n, _ int) int { return acc + n }, 0) // 20

// ─────────────────────────────────────────────────────────────────────────────
// Lazy adapters
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a sequence of fn(item, index) for every item of seq.
//
//	squares := collections.Map(ranges.To(4).All(), func(n, _ int) int { return n * n })
//	// → 0 1 4 9
func Map[T, U any](seq iter.Seq[T], fn func(T, int) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for item := range seq {
			if !yield(fn(item, i)) {
				return
			}
			i++
		}
	}
}

// Filter returns the items of seq for which fn(item, index) is true.
func Filter[T any](seq iter.Seq[T], fn func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for item := range seq {
			if fn(item, i) && !yield(item) {
				return
			}
			i++
		}
	}
}

// FlatMap maps every item to a slice and yields the slice elements in order.
//
//	pairs := collections.FlatMap(collections.Values([]string{"a", "b"}),
//	    func(s string, i int) []any { return []any{i, s} })
//	// → 0 "a" 1 "b"
func FlatMap[T, U any](seq iter.Seq[T], fn func(T, int) []U) iter.Seq[U] {
	return FlatMapSeq(seq, func(item T, i int) iter.Seq[U] {
		return slices.Values(fn(item, i))
	})
}

// FlatMapSeq is like [FlatMap] but fn returns a sequence, so nested ranges
// stay lazy:
//
//	tri := collections.FlatMapSeq(ranges.Span(1, 4).All(),
//	    func(n, _ int) iter.Seq[int] { return ranges.To(n).All() })
//	// → 0 0 1 0 1 2
func FlatMapSeq[T, U any](seq iter.Seq[T], fn func(T, int) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for item := range seq {
			for inner := range fn(item, i) {
				if !yield(inner) {
					return
				}
			}
			i++
		}
	}
}

// Take yields at most n items. A non-positive n yields nothing.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for item := range seq {
			if !yield(item) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Zip pairs the items of a and b and stops at the shorter sequence.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for first := range a {
			second, ok := next()
			if !ok || !yield(Pair[A, B]{First: first, Second: second}) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Consumers
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds seq into a single value of type U, starting from initial.
//
//	sum := collections.Reduce(ranges.To(5).All(),
//	    func(acc, n, _ int) int { return acc + n }, 0) // 10
func Reduce[T, U any](seq iter.Seq[T], fn func(U, T, int) U, initial U) U {
	result := initial
	i := 0
	for item := range seq {
		result = fn(result, item, i)
		i++
	}
	return result
}

// Fold is Reduce without an initial value: the first item seeds the
// accumulator. It returns [ErrEmptyCollection] when seq is empty.
func Fold[T any](seq iter.Seq[T], fn func(acc, item T) T) (T, error) {
	var (
		acc     T
		started bool
	)
	for item := range seq {
		if !started {
			acc, started = item, true
			continue
		}
		acc = fn(acc, item)
	}
	if !started {
		return acc, ErrEmptyCollection
	}
	return acc, nil
}

// Find returns the first item satisfying fn. It stops consuming seq as soon
// as a match is found.
func Find[T any](seq iter.Seq[T], fn func(T) bool) (T, bool) {
	for item := range seq {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindOrFail is like [Find] but returns [ErrNoMatchingItems] when nothing
// matches.
func FindOrFail[T any](seq iter.Seq[T], fn func(T) bool) (T, error) {
	item, ok := Find(seq, fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Each calls fn(item, index) for every item.
func Each[T any](seq iter.Seq[T], fn func(T, int)) {
	i := 0
	for item := range seq {
		fn(item, i)
		i++
	}
}

// Count consumes seq and returns the number of items.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// ToSlice collects seq into a new, non-nil slice.
func ToSlice[T any](seq iter.Seq[T]) []T {
	out := slices.Collect(seq)
	if out == nil {
		return []T{}
	}
	return out
}

// GroupBy groups the items of seq by the key extracted by fn.
//
//	parity := collections.GroupBy(ranges.To(5).All(), func(n int) bool { return n%2 == 0 })
//	// → map[false:[1 3] true:[0 2 4]]
func GroupBy[T any, K comparable](seq iter.Seq[T], fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for item := range seq {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy builds a map keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](seq iter.Seq[T], fn func(T) K) map[K]T {
	out := make(map[K]T)
	for item := range seq {
		out[fn(item)] = item
	}
	return out
}
