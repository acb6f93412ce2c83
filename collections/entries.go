package collections

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Values yields the elements of items in order.
func Values[T any](items []T) iter.Seq[T] { return slices.Values(items) }

// Indexed yields (index, element) pairs of items.
func Indexed[T any](items []T) iter.Seq2[int, T] { return slices.All(items) }

// Entries yields the (key, value) pairs of m in unspecified order.
func Entries[K comparable, V any](m map[K]V) iter.Seq2[K, V] { return maps.All(m) }

// SortedEntries yields the (key, value) pairs of m in ascending key order.
func SortedEntries[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// SetOf yields the members of set in unspecified order.
func SetOf[T comparable](set map[T]struct{}) iter.Seq[T] { return maps.Keys(set) }

// Pairs turns a two-value sequence into a sequence of [Pair].
func Pairs[K, V any](seq iter.Seq2[K, V]) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(Pair[K, V]{First: k, Second: v}) {
				return
			}
		}
	}
}

// FlatMapEntries calls fn(value, key) for every entry of seq and
// concatenates the returned slices.
//
//	swap := func(v int, k string) []any { return []any{v, k} }
//	collections.FlatMapEntries(collections.SortedEntries(map[string]int{"a": 1, "b": 2}), swap)
//	// → [1 "a" 2 "b"]
func FlatMapEntries[K, V, U any](seq iter.Seq2[K, V], fn func(V, K) []U) []U {
	out := []U{}
	for k, v := range seq {
		out = append(out, fn(v, k)...)
	}
	return out
}
