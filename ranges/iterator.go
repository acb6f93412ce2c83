package ranges

// Iterator is a one-shot cursor over the values of a [Range].
//
// It copies the range's start, step and length when created and never reads
// the Range again. Once [Iterator.Next] reports done it keeps doing so.
// An Iterator must not be shared between goroutines; obtain one per consumer
// from [Range.Iter].
type Iterator struct {
	start  int
	step   int
	length int
	index  int
}

func newIterator(start, step, length int) *Iterator {
	return &Iterator{start: start, step: step, length: length}
}

// Next returns the next value. When done is true the value is meaningless
// and the iterator is exhausted.
func (it *Iterator) Next() (value int, done bool) {
	value = it.start + it.index*it.step
	done = it.index >= it.length
	if !done {
		it.index++
	}
	return value, done
}

// Remaining returns how many values Next will still produce.
func (it *Iterator) Remaining() int {
	return max(0, it.length-it.index)
}

// Done reports whether the iterator is exhausted.
func (it *Iterator) Done() bool { return it.index >= it.length }
