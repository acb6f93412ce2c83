package ranges

import (
	"fmt"
	"math"
)

// Slice returns the Range selecting positions start, start+step, … up to but
// not including stop, in the same way Python slices a range object:
//
//	r := ranges.MustNew(0, 20, 2)              // 0 2 4 … 18
//	r.Slice(ranges.At(2), ranges.At(5), 1)     // 4 6 8
//	r.Slice(ranges.At(-3), ranges.Unbounded, 1) // 14 16 18
//
// Negative bounds count from the end and out-of-range bounds are clamped, so
// Slice never fails for a non-zero step. A negative step walks backwards and
// an unbounded start or stop then means the last or the first value
// respectively. The returned step is step*r.Step().
//
// A step of 0 returns an error wrapping [ErrZeroStep] and the zero Range.
func (r Range) Slice(start, stop Bound, step int) (Range, error) {
	if step == 0 {
		return Range{}, fmt.Errorf("slice %w", ErrZeroStep)
	}
	reversed := step < 0
	n := r.Count()

	first, last := 0, n
	if reversed {
		first, last = n-1, -1
	}
	from := clampPosition(start, first, n, reversed)
	to := clampPosition(stop, last, n, reversed)

	return New(r.edge(from), r.edge(to), step*r.Step())
}

// SliceTo is shorthand for Slice(At(start), At(stop), 1).
func (r Range) SliceTo(start, stop int) Range {
	out, _ := r.Slice(At(start), At(stop), 1)
	return out
}

// Reverse returns the range walked from its last value to its first.
func (r Range) Reverse() Range {
	out, _ := r.Slice(Unbounded, Unbounded, -1)
	return out
}

// clampPosition resolves a slice bound to a position in [0, n] for a forward
// slice or [-1, n-1] for a reversed one. Position -1 sits one step before
// the first value.
func clampPosition(b Bound, def, n int, reversed bool) int {
	i, ok := b.Get()
	if !ok {
		return def
	}
	lo, hi := 0, n
	if reversed {
		lo, hi = -1, n-1
	}
	if i < 0 {
		i += n
	}
	return max(lo, min(i, hi))
}

// edge converts a clamped slice position to a value. Positions -1 and
// Count() lie outside the range; when start+pos*step does not fit in an int
// the range's own stop, or the int limit past start, is used instead.
func (r Range) edge(pos int) int {
	v, step := r.at(pos), r.Step()
	switch {
	case pos > 0 && (step > 0 && v < r.start || step < 0 && v > r.start):
		return r.stop
	case pos < 0 && step > 0 && v > r.start:
		return math.MinInt
	case pos < 0 && step < 0 && v < r.start:
		return math.MaxInt
	}
	return v
}
