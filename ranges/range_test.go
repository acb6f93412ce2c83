package ranges_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-range-utils/ranges"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertValues(t *testing.T, r ranges.Range, want []int) {
	t.Helper()
	got := r.Values()
	if want == nil {
		want = []int{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%v values mismatch (-want +got):\n%s", r, diff)
	}
}

// naive produces the values of range(start, stop, step) with a plain loop.
func naive(start, stop, step int) []int {
	out := []int{}
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		out = append(out, v)
	}
	return out
}

// triples covers ascending, descending, empty and mismatched ranges.
func triples() [][3]int {
	var out [][3]int
	for start := -7; start <= 7; start++ {
		for stop := -7; stop <= 7; stop++ {
			for _, step := range []int{-4, -3, -2, -1, 1, 2, 3, 4} {
				out = append(out, [3]int{start, stop, step})
			}
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		r    ranges.Range
		want []int
	}{
		{"To", ranges.To(5), []int{0, 1, 2, 3, 4}},
		{"Span", ranges.Span(5, 15), []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}},
		{"New", ranges.MustNew(5, 15, 3), []int{5, 8, 11, 14}},
		{"NewNegativeStep", ranges.MustNew(10, 5, -2), []int{10, 8, 6}},
		{"NewDescendingEven", ranges.MustNew(20, 10, -2), []int{20, 18, 16, 14, 12}},
		{"ToZero", ranges.To(0), nil},
		{"ToNegative", ranges.To(-3), nil},
		{"OfOne", ranges.MustOf(10), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"OfTwo", ranges.MustOf(5, 10), []int{5, 6, 7, 8, 9}},
		{"OfThree", ranges.MustOf(10, 20, 2), []int{10, 12, 14, 16, 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValues(t, tt.r, tt.want)
		})
	}
}

func TestOfArity(t *testing.T) {
	_, err := ranges.Of()
	if !errors.Is(err, ranges.ErrArity) {
		t.Fatalf("Of() err = %v; want ErrArity", err)
	}
	if err.Error() != "range expected at least 1 argument, got 0" {
		t.Fatalf("Of() message = %q", err.Error())
	}

	_, err = ranges.Of(1, 2, 3, 4)
	var arity *ranges.ArityError
	if !errors.As(err, &arity) || arity.Got != 4 {
		t.Fatalf("Of(1,2,3,4) err = %v; want *ArityError{Got: 4}", err)
	}
}

func TestZeroStep(t *testing.T) {
	if _, err := ranges.New(0, 10, 0); !errors.Is(err, ranges.ErrZeroStep) {
		t.Fatalf("New(0,10,0) err = %v; want ErrZeroStep", err)
	}
	if _, err := ranges.Of(0, 10, 0); !errors.Is(err, ranges.ErrZeroStep) {
		t.Fatalf("Of(0,10,0) err = %v; want ErrZeroStep", err)
	}
	if ranges.ErrZeroStep.Error() != "step must not be zero" {
		t.Fatalf("message = %q", ranges.ErrZeroStep.Error())
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew(0, 1, 0) did not panic")
		}
	}()
	ranges.MustNew(0, 1, 0)
}

func TestParse(t *testing.T) {
	r, err := ranges.Parse("5", " 15 ", "3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	assertValues(t, r, []int{5, 8, 11, 14})

	for _, bad := range [][]string{{"5.5"}, {"true"}, {"1", "ten"}, {"0", "10", ""}} {
		if _, err := ranges.Parse(bad...); !errors.Is(err, ranges.ErrTypeKind) {
			t.Errorf("Parse(%q) err = %v; want ErrTypeKind", bad, err)
		}
	}

	if _, err := ranges.Parse(); !errors.Is(err, ranges.ErrArity) {
		t.Fatalf("Parse() err = %v; want ErrArity", err)
	}
	if _, err := ranges.Parse("1", "2", "0"); !errors.Is(err, ranges.ErrZeroStep) {
		t.Fatalf("Parse(1,2,0) err = %v; want ErrZeroStep", err)
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var r ranges.Range
	if r.Len() != 0 || r.Step() != 1 || !r.IsEmpty() {
		t.Fatalf("zero Range = %v len %d", r, r.Len())
	}
	assertValues(t, r, nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Length
// ─────────────────────────────────────────────────────────────────────────────

func TestLenMatchesIteration(t *testing.T) {
	for _, tr := range triples() {
		r := ranges.MustNew(tr[0], tr[1], tr[2])
		want := naive(tr[0], tr[1], tr[2])
		if r.Len() < 0 {
			t.Fatalf("%v Len = %d", r, r.Len())
		}
		if len(want) > 0 && r.Len() != len(want) {
			t.Fatalf("%v Len = %d; want %d", r, r.Len(), len(want))
		}
		if r.Count() != len(want) {
			t.Fatalf("%v Count = %d; want %d", r, r.Count(), len(want))
		}
		assertValues(t, r, want)
	}
}

func TestDirectionMismatch(t *testing.T) {
	tests := []struct {
		r   ranges.Range
		len int
	}{
		{ranges.MustNew(0, 10, -1), 10},
		{ranges.MustNew(10, 0, 3), 4},
		{ranges.Span(5, 2), 3},
	}
	for _, tt := range tests {
		if tt.r.Len() != tt.len {
			t.Errorf("%v Len = %d; want %d", tt.r, tt.r.Len(), tt.len)
		}
		if tt.r.Count() != 0 || !tt.r.IsEmpty() {
			t.Errorf("%v Count = %d; want 0", tt.r, tt.r.Count())
		}
		if _, done := tt.r.Iter().Next(); !done {
			t.Errorf("%v iterator produced a value", tt.r)
		}
		assertValues(t, tt.r, nil)
	}
}

// first returns up to n leading values of r without materialising it.
func first(r ranges.Range, n int) []int {
	out := []int{}
	for v := range r.All() {
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestLenNearIntLimits(t *testing.T) {
	tests := []struct {
		name  string
		r     ranges.Range
		len   int
		last  int
		first []int
	}{
		{"AscendingToMax", ranges.MustNew(0, math.MaxInt, 2), math.MaxInt/2 + 1, math.MaxInt - 1, []int{0, 2, 4}},
		{"DescendingToMin", ranges.MustNew(0, math.MinInt+1, -2), math.MaxInt/2 + 1, math.MinInt + 2, []int{0, -2, -4}},
		{"StepOfMax", ranges.MustNew(-10, math.MaxInt, math.MaxInt), 2, math.MaxInt - 10, []int{-10, math.MaxInt - 10}},
		{"StepOfMin", ranges.MustNew(math.MaxInt, math.MinInt, math.MinInt), 2, -1, []int{math.MaxInt, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Len() != tt.len || tt.r.Count() != tt.len {
				t.Fatalf("%v Len = %d, Count = %d; want %d", tt.r, tt.r.Len(), tt.r.Count(), tt.len)
			}
			if tt.r.IsEmpty() {
				t.Fatalf("%v reported empty", tt.r)
			}
			if v, err := tt.r.Index(0); err != nil || v != tt.r.Start() {
				t.Fatalf("%v Index(0) = %d, %v", tt.r, v, err)
			}
			if v, err := tt.r.Index(-1); err != nil || v != tt.last {
				t.Fatalf("%v Index(-1) = %d, %v; want %d", tt.r, v, err, tt.last)
			}
			if !tt.r.Contains(tt.last) || tt.r.Contains(tt.r.Stop()) {
				t.Fatalf("%v Contains disagrees with its bounds", tt.r)
			}
			if diff := cmp.Diff(tt.first, first(tt.r, 3)); diff != "" {
				t.Fatalf("%v leading values (-want +got):\n%s", tt.r, diff)
			}
		})
	}
}

func TestLenSaturates(t *testing.T) {
	r := ranges.Span(math.MinInt, math.MaxInt)
	if r.Len() != math.MaxInt {
		t.Fatalf("Len = %d; want math.MaxInt", r.Len())
	}
	if !r.Contains(0) || !r.Contains(math.MinInt) || r.Contains(math.MaxInt) {
		t.Fatal("Contains wrong across the whole int domain")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing
// ─────────────────────────────────────────────────────────────────────────────

func TestIndex(t *testing.T) {
	r := ranges.Span(0, 10)
	if v, _ := r.Index(3); v != 3 {
		t.Fatalf("Index(3) = %d", v)
	}
	if v, _ := r.Index(-1); v != 9 {
		t.Fatalf("Index(-1) = %d", v)
	}
	if v := ranges.Span(0, 5).MustIndex(-1); v != 4 {
		t.Fatalf("Span(0,5).Index(-1) = %d", v)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	r := ranges.Span(0, 5)
	for _, i := range []int{5, 10, -6} {
		_, err := r.Index(i)
		if !errors.Is(err, ranges.ErrIndexOutOfRange) {
			t.Fatalf("Index(%d) err = %v; want ErrIndexOutOfRange", i, err)
		}
		var ie *ranges.IndexError
		if !errors.As(err, &ie) || ie.Index != i || ie.Len != 5 {
			t.Fatalf("Index(%d) err = %#v", i, err)
		}
	}
	_, err := r.Index(10)
	if err.Error() != "index 10 out of range" {
		t.Fatalf("message = %q", err.Error())
	}
	if _, err := ranges.To(0).Index(0); err == nil {
		t.Fatal("Index(0) on an empty range should fail")
	}
}

func TestIndexProperties(t *testing.T) {
	for _, tr := range triples() {
		r := ranges.MustNew(tr[0], tr[1], tr[2])
		n := r.Len()
		for i := 0; i < n; i++ {
			v, err := r.Index(i)
			if err != nil {
				t.Fatalf("%v Index(%d): %v", r, i, err)
			}
			if v != r.Start()+i*r.Step() {
				t.Fatalf("%v Index(%d) = %d", r, i, v)
			}
			neg, err := r.Index(i - n)
			if err != nil || neg != v {
				t.Fatalf("%v Index(%d) = %d, %v; want %d", r, i-n, neg, err, v)
			}
		}
	}
}

func TestContains(t *testing.T) {
	for _, tr := range triples() {
		r := ranges.MustNew(tr[0], tr[1], tr[2])
		in := map[int]bool{}
		for _, v := range naive(tr[0], tr[1], tr[2]) {
			in[v] = true
		}
		for v := -20; v <= 20; v++ {
			if r.Contains(v) != in[v] {
				t.Fatalf("%v Contains(%d) = %v", r, v, r.Contains(v))
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestRestartable(t *testing.T) {
	r := ranges.Span(5, 10)
	first := r.Values()
	second := r.Values()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}

	seq := r.All()
	var a, b []int
	for v := range seq {
		a = append(a, v)
	}
	for v := range seq {
		b = append(b, v)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("reused iter.Seq differs:\n%s", diff)
	}
}

func TestAllStopsEarly(t *testing.T) {
	var got []int
	for v := range ranges.To(100).All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestEnumerate(t *testing.T) {
	var pos, vals []int
	for i, v := range ranges.MustNew(10, 4, -3).Enumerate() {
		pos = append(pos, i)
		vals = append(vals, v)
	}
	if diff := cmp.Diff([]int{0, 1}, pos); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]int{10, 7}, vals); diff != "" {
		t.Fatal(diff)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

func TestString(t *testing.T) {
	if s := ranges.To(5).String(); s != "range(0, 5)" {
		t.Fatalf("String = %q", s)
	}
	if s := ranges.MustNew(10, 0, -2).String(); s != "range(10, 0, -2)" {
		t.Fatalf("String = %q", s)
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(ranges.MustNew(0, 10, 2))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"start":0,"stop":10,"step":2}` {
		t.Fatalf("MarshalJSON = %s", b)
	}

	var r ranges.Range
	if err := json.Unmarshal([]byte(`{"start":3,"stop":6}`), &r); err != nil {
		t.Fatal(err)
	}
	assertValues(t, r, []int{3, 4, 5})

	if err := json.Unmarshal([]byte(`{"start":3,"stop":6,"step":0}`), &r); !errors.Is(err, ranges.ErrZeroStep) {
		t.Fatalf("step 0 err = %v", err)
	}
}
