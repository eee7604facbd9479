package breakaxes

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ----------------------------------------------------------------------------
// Span

// A Span is a sub-interval of a data axis together with the factor
// applied to its drawn width: a Factor below 1 squeezes the interval,
// a Factor above 1 stretches it.
type Span struct {
	Min, Max float64
	Factor   float64
}

func (sp Span) String() string {
	return fmt.Sprintf("[%g:%g]*%g", sp.Min, sp.Max, sp.Factor)
}

// Squeezed reports whether sp narrows its interval.
func (sp Span) Squeezed() bool { return sp.Factor < 1 }

// inside reports whether x lies strictly between sp.Min and sp.Max.
func (sp Span) inside(x float64) bool { return sp.Min < x && x < sp.Max }

// ----------------------------------------------------------------------------
// Piecewise map

// piecewise is the strictly increasing map shared by Scale and
// LogScale. Below the first knot it is the identity, inside the i-th
// span it has slope Factor i, between and after the spans slope 1.
type piecewise struct {
	spans  []Span
	knots  []float64 // span edges, ascending
	images []float64 // forward images of the knots
	slopes []float64 // slopes[j] applies between knots[j-1] and knots[j]
}

// newPiecewise validates the spans and precomputes the knot images.
// The spans must be sorted, non-overlapping and non-degenerate with
// positive factors. Adjacent spans may share an edge.
func newPiecewise(spans []Span) (*piecewise, error) {
	if len(spans) == 0 {
		return nil, errors.New("breakaxes: no spans")
	}
	prev := math.Inf(-1)
	for i, sp := range spans {
		if !(sp.Min < sp.Max) {
			return nil, fmt.Errorf("breakaxes: span %d %s: Min not below Max", i, sp)
		}
		if sp.Min < prev {
			return nil, fmt.Errorf("breakaxes: span %d %s: overlaps span %d ending at %g",
				i, sp, i-1, prev)
		}
		if !(sp.Factor > 0) {
			return nil, fmt.Errorf("breakaxes: span %d %s: Factor not positive", i, sp)
		}
		prev = sp.Max
	}

	pw := &piecewise{
		spans:  append([]Span(nil), spans...),
		knots:  make([]float64, 0, 2*len(spans)),
		images: make([]float64, 2*len(spans)),
		slopes: make([]float64, 0, 2*len(spans)+1),
	}
	pw.slopes = append(pw.slopes, 1)
	for _, sp := range spans {
		pw.knots = append(pw.knots, sp.Min, sp.Max)
		pw.slopes = append(pw.slopes, sp.Factor, 1)
	}
	pw.images[0] = pw.knots[0]
	for j := 1; j < len(pw.knots); j++ {
		pw.images[j] = pw.images[j-1] + pw.slopes[j]*(pw.knots[j]-pw.knots[j-1])
	}

	pw.debugDump("piecewise map")
	return pw, nil
}

// forward maps x from the data domain to the drawn domain. It is the
// identity up to the first knot.
func (pw *piecewise) forward(x float64) float64 {
	if x <= pw.knots[0] {
		return x
	}
	i := sort.SearchFloat64s(pw.knots, x)
	if i == len(pw.knots) {
		return pw.images[i-1] + (x - pw.knots[i-1])
	}
	if pw.knots[i] == x {
		return pw.images[i]
	}
	return pw.images[i-1] + pw.slopes[i]*(x-pw.knots[i-1])
}

// inverse maps y from the drawn domain back to the data domain.
func (pw *piecewise) inverse(y float64) float64 {
	if y <= pw.images[0] {
		return y
	}
	i := sort.SearchFloat64s(pw.images, y)
	if i == len(pw.images) {
		return pw.knots[i-1] + (y - pw.images[i-1])
	}
	if pw.images[i] == y {
		return pw.knots[i]
	}
	return pw.knots[i-1] + (y-pw.images[i-1])/pw.slopes[i]
}

func (pw *piecewise) debugDump(info string) {
	if !debug {
		return
	}
	fmt.Println("breakaxes:", info)
	for i, sp := range pw.spans {
		fmt.Println("  span", i, sp)
	}
	fmt.Println("  knots ", pw.knots)
	fmt.Println("  images", pw.images)
}
