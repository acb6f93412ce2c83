// Package ranges provides Range, a lazy and restartable arithmetic sequence of
// integers with Python-style half-open bounds, negative indexing and slicing.
//
// # Construction
//
// The three shapes of Python's range() map to named constructors:
//
//	ranges.To(5)             // 0 1 2 3 4
//	ranges.Span(5, 15)       // 5 6 … 14
//	ranges.New(5, 15, 3)     // 5 8 11 14 (error when step is 0)
//
// [Of] keeps the classic 1-, 2- or 3-argument form and [Parse] accepts the
// same arguments as strings, rejecting anything that is not an integer.
//
// # Iteration
//
// A Range never materialises its values. Every call to [Range.Iter] or
// [Range.All] starts a fresh [Iterator], so the same Range can be walked any
// number of times, from any number of goroutines:
//
//	for v := range ranges.To(3).All() {
//	    fmt.Println(v)
//	}
//
// # Indexing and slicing
//
// [Range.Index] accepts negative indices counted from the end, and
// [Range.Slice] returns a new Range over the selected positions. Slice bounds
// are [Bound] values, either [Unbounded] or [At]:
//
//	r := ranges.MustNew(0, 10, 2)                  // 0 2 4 6 8
//	r.Slice(ranges.At(2), ranges.At(5), 1)         // 4 6 8
//	r.Slice(ranges.Unbounded, ranges.Unbounded, -1) // 8 6 4 2 0
//
// # Direction
//
// [Range.Len] is ceil(|stop-start| / |step|) whether or not the sign of step
// agrees with the direction from start to stop. A range such as
// Span(5, 2) reports Len() == 3 but yields nothing; [Range.Count] reports
// what iteration actually produces.
package ranges
