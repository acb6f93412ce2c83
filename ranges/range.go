package ranges

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Range is an immutable arithmetic progression start, start+step, … that
// stops before reaching stop.
//
// A Range is a small value type; copy it freely. It holds no iteration state:
// [Range.Iter] and [Range.All] build a new [Iterator] on every call, and
// [Range.Slice] returns a new Range without touching the receiver.
//
// The zero value is the empty range(0, 0).
type Range struct {
	start int
	stop  int
	step  int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// To returns range(0, stop, 1).
func To(stop int) Range {
	return Range{stop: stop, step: 1}
}

// Span returns range(start, stop, 1).
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, step: 1}
}

// New returns range(start, stop, step). It returns [ErrZeroStep] when step
// is 0.
func New(start, stop, step int) (Range, error) {
	if step == 0 {
		return Range{}, ErrZeroStep
	}
	return Range{start: start, stop: stop, step: step}, nil
}

// MustNew is like [New] but panics on error.
func MustNew(start, stop, step int) Range {
	r, err := New(start, stop, step)
	if err != nil {
		panic(err)
	}
	return r
}

// Of builds a Range from one, two or three arguments, following Python's
// range():
//
//	Of(stop)
//	Of(start, stop)
//	Of(start, stop, step)
//
// Any other argument count returns an [*ArityError].
func Of(args ...int) (Range, error) {
	switch len(args) {
	case 1:
		return To(args[0]), nil
	case 2:
		return Span(args[0], args[1]), nil
	case 3:
		return New(args[0], args[1], args[2])
	default:
		return Range{}, &ArityError{Got: len(args)}
	}
}

// MustOf is like [Of] but panics on error.
func MustOf(args ...int) Range {
	r, err := Of(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a Range from textual arguments, as typed on a command line.
// Every argument must be a base-10 integer; fractions, booleans and words
// return an error wrapping [ErrTypeKind]. The parsed values are passed to
// [Of].
func Parse(args ...string) (Range, error) {
	if len(args) == 0 || len(args) > 3 {
		return Range{}, &ArityError{Got: len(args)}
	}
	ints := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrTypeKind, arg)
		}
		ints[i] = n
	}
	return Of(ints...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Start returns the first value of the progression.
func (r Range) Start() int { return r.start }

// Stop returns the exclusive bound.
func (r Range) Stop() int { return r.stop }

// Step returns the signed increment. It is never 0.
func (r Range) Step() int {
	if r.step == 0 {
		return 1
	}
	return r.step
}

// Len returns ceil(|stop-start| / |step|).
//
// The magnitudes are used whatever the sign of step, so a range whose step
// points away from stop still reports a non-zero length. See [Range.Count].
// The distance is measured unsigned, so ranges spanning most of the int
// domain are exact; a length above math.MaxInt saturates.
func (r Range) Len() int {
	span := distance(r.start, r.stop)
	step := magnitude(r.Step())
	n := span / step
	if span%step != 0 {
		n++
	}
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Count returns the number of values iteration produces: [Range.Len] when
// the step moves from start towards stop, 0 otherwise.
func (r Range) Count() int {
	if !r.forward() {
		return 0
	}
	return r.Len()
}

// IsEmpty reports whether iteration produces no values.
func (r Range) IsEmpty() bool { return r.Count() == 0 }

// forward reports whether the sign of step agrees with stop-start.
func (r Range) forward() bool {
	if r.Step() > 0 {
		return r.start < r.stop
	}
	return r.start > r.stop
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing
// ─────────────────────────────────────────────────────────────────────────────

// Index returns the value at position i. Negative positions count from the
// end, so Index(-1) is the last value. Positions outside [-Len(), Len())
// return an [*IndexError].
func (r Range) Index(i int) (int, error) {
	n := r.Len()
	if i < -n || i >= n {
		return 0, &IndexError{Index: i, Len: n}
	}
	if i < 0 {
		i += n
	}
	return r.at(i), nil
}

// MustIndex is like [Range.Index] but panics on error.
func (r Range) MustIndex(i int) int {
	v, err := r.Index(i)
	if err != nil {
		panic(err)
	}
	return v
}

// at converts a position to a value with no bounds check.
func (r Range) at(pos int) int { return r.start + pos*r.Step() }

// Contains reports whether iteration produces v.
func (r Range) Contains(v int) bool {
	if r.IsEmpty() {
		return false
	}
	step := r.Step()
	if step > 0 && (v < r.start || v >= r.stop) {
		return false
	}
	if step < 0 && (v > r.start || v <= r.stop) {
		return false
	}
	return distance(r.start, v)%magnitude(step) == 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns a new Iterator positioned before the first value.
func (r Range) Iter() *Iterator {
	return newIterator(r.start, r.Step(), r.Count())
}

// All returns the values as an iter.Seq. Each use of the sequence draws a
// fresh Iterator, so it can be ranged over repeatedly.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := r.Iter()
		for {
			v, done := it.Next()
			if done || !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns (position, value) pairs.
func (r Range) Enumerate() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		it := r.Iter()
		for i := 0; ; i++ {
			v, done := it.Next()
			if done || !yield(i, v) {
				return
			}
		}
	}
}

// Values materialises the range into a new slice.
func (r Range) Values() []int {
	out := make([]int, 0, r.Count())
	for v := range r.All() {
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// String renders the range the way Python does: range(0, 5) or
// range(0, 10, 2).
func (r Range) String() string {
	if r.Step() == 1 {
		return fmt.Sprintf("range(%d, %d)", r.start, r.stop)
	}
	return fmt.Sprintf("range(%d, %d, %d)", r.start, r.stop, r.Step())
}

type rangeJSON struct {
	Start int  `json:"start"`
	Stop  int  `json:"stop"`
	Step  *int `json:"step,omitempty"`
}

// MarshalJSON encodes the range as {"start":0,"stop":10,"step":2}.
func (r Range) MarshalJSON() ([]byte, error) {
	step := r.Step()
	return json.Marshal(rangeJSON{Start: r.start, Stop: r.stop, Step: &step})
}

// UnmarshalJSON decodes the object written by MarshalJSON. A missing step
// defaults to 1; a step of 0 returns [ErrZeroStep].
func (r *Range) UnmarshalJSON(data []byte) error {
	var raw rangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	step := 1
	if raw.Step != nil {
		step = *raw.Step
	}
	parsed, err := New(raw.Start, raw.Stop, step)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// distance returns |b-a| without overflowing.
func distance(a, b int) uint {
	if a > b {
		a, b = b, a
	}
	return uint(b) - uint(a)
}

// magnitude returns |n|, including for math.MinInt.
func magnitude(n int) uint {
	if n < 0 {
		return -uint(n)
	}
	return uint(n)
}
