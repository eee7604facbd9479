package breakaxes

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

func equal64(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < 0.001
}

var spanErrorTests = []struct {
	spans []Span
	ok    bool
}{
	{nil, false},
	{[]Span{{10, 20, 0.5}}, true},
	{[]Span{{20, 10, 0.5}}, false},              // Min above Max
	{[]Span{{10, 10, 0.5}}, false},              // empty interval
	{[]Span{{nan, 20, 0.5}}, false},             // NaN edge
	{[]Span{{10, 20, 0}}, false},                // zero factor
	{[]Span{{10, 20, -1}}, false},               // negative factor
	{[]Span{{10, 20, nan}}, false},              // NaN factor
	{[]Span{{10, 20, 0.5}, {15, 30, 2}}, false}, // overlapping
	{[]Span{{30, 40, 2}, {10, 20, 0.5}}, false}, // unsorted
	{[]Span{{10, 20, 0.5}, {20, 30, 2}}, true},  // shared edge
}

func TestNewScaleErrors(t *testing.T) {
	for i, tc := range spanErrorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := NewScale(tc.spans...); (err == nil) != tc.ok {
				t.Errorf("NewScale(%v) error %v, want ok=%t",
					tc.spans, err, tc.ok)
			}
			if _, err := NewLogScale(tc.spans...); (err == nil) != tc.ok {
				t.Errorf("NewLogScale(%v) error %v, want ok=%t",
					tc.spans, err, tc.ok)
			}
		})
	}
}

var forwardTests = []struct {
	spans   []Span
	x, want float64
}{
	// One squeezed span.
	{[]Span{{10, 20, 0.1}}, 5, 5},
	{[]Span{{10, 20, 0.1}}, 10, 10},
	{[]Span{{10, 20, 0.1}}, 15, 10.5},
	{[]Span{{10, 20, 0.1}}, 20, 11},
	{[]Span{{10, 20, 0.1}}, 30, 21},

	// One stretched span.
	{[]Span{{0, 1, 2}}, -1, -1},
	{[]Span{{0, 1, 2}}, 0.5, 1},
	{[]Span{{0, 1, 2}}, 1, 2},
	{[]Span{{0, 1, 2}}, 3, 4},

	// Two spans with a linear piece between them.
	{[]Span{{10, 20, 0.1}, {30, 40, 0.25}}, 25, 16},
	{[]Span{{10, 20, 0.1}, {30, 40, 0.25}}, 30, 21},
	{[]Span{{10, 20, 0.1}, {30, 40, 0.25}}, 40, 23.5},
	{[]Span{{10, 20, 0.1}, {30, 40, 0.25}}, 50, 33.5},

	// Adjacent spans sharing an edge.
	{[]Span{{0, 1, 2}, {1, 2, 0.5}}, 1, 2},
	{[]Span{{0, 1, 2}, {1, 2, 0.5}}, 1.5, 2.25},
	{[]Span{{0, 1, 2}, {1, 2, 0.5}}, 3, 3.5},
}

func TestScaleForward(t *testing.T) {
	for i, tc := range forwardTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s, err := NewScale(tc.spans...)
			if err != nil {
				t.Fatalf("NewScale(%v): %v", tc.spans, err)
			}
			if got := s.Forward(tc.x); !equal64(got, tc.want) {
				t.Errorf("Forward(%g) = %g, want %g", tc.x, got, tc.want)
			}
			if got := s.Inverse(tc.want); !equal64(got, tc.x) {
				t.Errorf("Inverse(%g) = %g, want %g", tc.want, got, tc.x)
			}
		})
	}
}

func TestInverseRoundTrip(t *testing.T) {
	s, err := NewScale(Span{10, 20, 0.1}, Span{30, 40, 4})
	if err != nil {
		t.Fatal(err)
	}
	for x := -5.0; x <= 55; x += 0.25 {
		if got := s.Inverse(s.Forward(x)); !equal64(got, x) {
			t.Fatalf("Inverse(Forward(%g)) = %g", x, got)
		}
	}
}

func TestForwardIncreasing(t *testing.T) {
	s, err := NewScale(Span{0, 1, 2}, Span{1, 2, 0.5}, Span{3, 4, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	prev := math.Inf(-1)
	for x := -2.0; x <= 6; x += 0.125 {
		y := s.Forward(x)
		if y <= prev {
			t.Fatalf("Forward not increasing at %g: %g after %g", x, y, prev)
		}
		prev = y
	}
}

func TestSpanSqueezed(t *testing.T) {
	for i, tc := range []struct {
		sp   Span
		want bool
	}{
		{Span{0, 1, 0.5}, true},
		{Span{0, 1, 1}, false},
		{Span{0, 1, 2}, false},
	} {
		if got := tc.sp.Squeezed(); got != tc.want {
			t.Errorf("%d: %v.Squeezed() = %t, want %t", i, tc.sp, got, tc.want)
		}
	}
}

func TestSpanString(t *testing.T) {
	if got := (Span{10, 20, 0.5}).String(); got != "[10:20]*0.5" {
		t.Errorf("String() = %q", got)
	}
}
