package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-range-utils/ranges"
)

// Collection is an immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines without locking.
//
// Positions follow Python: negative indices count from the end, and
// [Collection.Slice] takes optional bounds plus a signed step. The position
// arithmetic is delegated to [ranges.Range]:
//
//	c := collections.New("a", "b", "c", "d", "e")
//	c.Get(-1)                                                // "e"
//	c.Slice(ranges.At(1), ranges.Unbounded, 2)              // [b d]
//	c.Slice(ranges.Unbounded, ranges.Unbounded, -1)         // [e d c b a]
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Collect drains seq into a new Collection.
//
//	c := collections.Collect(ranges.MustNew(0, 10, 3).All()) // [0 3 6 9]
func Collect[T any](seq iter.Seq[T]) *Collection[T] {
	return &Collection[T]{items: ToSlice(seq)}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the items as a sequence. It satisfies [Iterable].
func (c *Collection[T]) All() iter.Seq[T] { return slices.Values(c.items) }

// Items returns a copy of the underlying slice.
func (c *Collection[T]) Items() []T { return slices.Clone(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// positions is the index space of c.
func (c *Collection[T]) positions() ranges.Range { return ranges.To(len(c.items)) }

// Get returns the item at index. Negative indices count from the end.
// Indices outside [-Count(), Count()) return an error wrapping
// [ErrIndexOutOfRange].
func (c *Collection[T]) Get(index int) (T, error) {
	pos, err := c.positions().Index(index)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return c.items[pos], nil
}

// Has reports whether index (possibly negative) addresses an item.
func (c *Collection[T]) Has(index int) bool {
	_, err := c.positions().Index(index)
	return err == nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return Find(c.All(), fns[0])
	}
	return Find(c.All(), func(T) bool { return true })
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	rev := c.Reverse()
	return rev.First(fns...)
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	_, ok := Find(c.All(), fn)
	return ok
}

// Search returns the index of the first item for which fn returns true, or -1.
func (c *Collection[T]) Search(fn func(T) bool) int {
	return slices.IndexFunc(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return Collect(Filter(c.All(), fn))
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return c.pick(c.positions().Reverse())
}

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Concat(c.items, items)}
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Push(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the items at positions start, start+step, … before stop,
// with Python's slice semantics: bounds may be negative or out of range,
// either may be [ranges.Unbounded], and a negative step walks backwards.
// A step of 0 returns [ErrZeroStep].
func (c *Collection[T]) Slice(start, stop ranges.Bound, step int) (*Collection[T], error) {
	sel, err := c.positions().Slice(start, stop, step)
	if err != nil {
		return nil, err
	}
	return c.pick(sel), nil
}

// pick copies the items at the positions produced by sel.
func (c *Collection[T]) pick(sel ranges.Range) *Collection[T] {
	out := make([]T, 0, sel.Count())
	for pos := range sel.All() {
		out = append(out, c.items[pos])
	}
	return &Collection[T]{items: out}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return c.pick(c.positions().SliceTo(n, len(c.items)))
	}
	return c.pick(c.positions().SliceTo(0, n))
}

// Skip returns a new collection without the first n items.
// A negative n drops items counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n < 0 {
		return c.pick(c.positions().SliceTo(0, n))
	}
	sel, _ := c.positions().Slice(ranges.At(n), ranges.Unbounded, 1)
	return c.pick(sel)
}

// Chunk splits the collection into consecutive groups of size. The last
// group may contain fewer than size items. Returns [ErrInvalidChunkSize]
// when size <= 0.
func (c *Collection[T]) Chunk(size int) ([]*Collection[T], error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	starts, _ := ranges.New(0, len(c.items), size)
	chunks := make([]*Collection[T], 0, starts.Count())
	for from := range starts.All() {
		chunks = append(chunks, c.pick(c.positions().SliceTo(from, from+size)))
	}
	return chunks, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return strings.Join(ToSlice(Map(c.All(), func(item T, _ int) string { return fn(item) })), sep)
}
