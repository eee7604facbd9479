// Package breakaxes produces broken axes for gonum.org/v1/plot:
// axes whose scale squeezes or stretches chosen sub-intervals of the
// data range and whose breaks are marked by small paired diagonal
// strokes.
//
// It uses and enhances gonum.org/v1/plot and reimplements none of it.
//
// Scales
//
// A Span is one sub-interval of a data axis together with the factor
// applied to its drawn width. NewScale and NewLogScale turn a list of
// spans into a plot.Normalizer which can be installed on an Axis with
// SetScale or ScaleXY. A Ticks value filters the tick marks of such
// an axis so no labels pile up inside a squeezed span.
//
// Breaks
//
// A Breaks value describes where the axes are interrupted. Its Apply
// method wires everything into a plot.Plot: the data plotters are
// clipped to the region outside the break gaps, the axis lines of
// broken axes are replaced by interrupted frame lines, and the gaps
// are marked with the paired diagonal strokes of hand drawn broken
// axes.
package breakaxes
