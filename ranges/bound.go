package ranges

import "strconv"

// Bound is an optional slice index. The zero value is [Unbounded].
type Bound struct {
	index int
	set   bool
}

// Unbounded leaves a slice bound open: the slice runs to the natural end of
// the range in the direction of its step.
var Unbounded = Bound{}

// At returns a Bound fixed at index i. Negative values count from the end.
func At(i int) Bound { return Bound{index: i, set: true} }

// Get returns the index and whether the bound is set.
func (b Bound) Get() (int, bool) { return b.index, b.set }

// IsSet reports whether b holds an index.
func (b Bound) IsSet() bool { return b.set }

// String returns the index, or "None" when unbounded.
func (b Bound) String() string {
	if !b.set {
		return "None"
	}
	return strconv.Itoa(b.index)
}
