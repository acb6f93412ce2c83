// Package collections provides lazy helpers over Go's iterator protocol
// (iter.Seq and iter.Seq2) and a small immutable Collection type.
//
// # Sequences
//
// Any value with an All() iter.Seq[T] method satisfies [Iterable], including
// [ranges.Range] and [*Collection]. The helpers in this package accept the
// sequence itself, so slices, maps, sets and ranges all plug in the same way:
//
//	squares := collections.Map(ranges.To(5).All(), func(n, _ int) int { return n * n })
//	total   := collections.Reduce(squares, func(acc, n, _ int) int { return acc + n }, 0) // 30
//
//	admin, ok := collections.Find(collections.Values(users), func(u User) bool { return u.Admin })
//
// Map, Filter, FlatMap and Take are lazy: they return a new sequence and do
// no work until it is ranged over. Reduce, Fold, Find, Each, Count and
// Collect consume the sequence.
//
// # Containers
//
// [Values] and [Indexed] lift a slice, [Entries] a map, and [SetOf] a
// map[T]struct{} into sequences. [FlatMapEntries] maps every (key, value)
// pair to zero or more results and flattens them.
//
// # Collection
//
// [Collection] wraps a slice and never mutates it. Indexing and slicing
// follow Python: Get(-1) is the last item and
// Slice(ranges.Unbounded, ranges.Unbounded, -1) reverses.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions.
package collections
