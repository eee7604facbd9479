package breakaxes

import (
	"sort"
	"strconv"

	"gonum.org/v1/plot"
)

// Ticks is a plot.Ticker for broken axes. It lets a base ticker
// propose ticks and hides those falling inside a squeezed span, where
// they would pile up. Ticks inside stretched spans are kept.
type Ticks struct {
	// Base proposes the ticks. A nil Base means plot.DefaultTicks.
	Base plot.Ticker

	// Spans are the spans of the axis' scale.
	Spans []Span

	// Edges adds labelled ticks at the edges of every squeezed
	// span.
	Edges bool
}

// Ticks returns the filtered ticks for the range [min, max],
// implementing the plot.Ticker interface.
func (t Ticks) Ticks(min, max float64) []plot.Tick {
	base := t.Base
	if base == nil {
		base = plot.DefaultTicks{}
	}

	var ticks []plot.Tick
	for _, tick := range base.Ticks(min, max) {
		if t.hidden(tick.Value) {
			continue
		}
		ticks = append(ticks, tick)
	}
	if t.Edges {
		ticks = t.withEdges(ticks, min, max)
	}
	return ticks
}

// hidden reports whether a tick at x lies inside a squeezed span.
func (t Ticks) hidden(x float64) bool {
	for _, sp := range t.Spans {
		if sp.Squeezed() && sp.inside(x) {
			return true
		}
	}
	return false
}

// withEdges adds major ticks at the edges of the squeezed spans so
// the reader can tell where the axis jumps.
func (t Ticks) withEdges(ticks []plot.Tick, min, max float64) []plot.Tick {
	for _, sp := range t.Spans {
		if !sp.Squeezed() {
			continue
		}
		for _, v := range [2]float64{sp.Min, sp.Max} {
			if v < min || v > max || hasTick(ticks, v) {
				continue
			}
			ticks = append(ticks, plot.Tick{
				Value: v,
				Label: strconv.FormatFloat(v, 'g', -1, 64),
			})
		}
	}
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i].Value < ticks[j].Value
	})
	return ticks
}

func hasTick(ticks []plot.Tick, v float64) bool {
	for _, t := range ticks {
		if t.Value == v {
			return true
		}
	}
	return false
}
