// Package merge fuses independently keyed color and opacity sequences into
// one sequence of RGBA breakpoints for gradient rendering.
package merge

import (
	"slices"

	"coedit/internal/node"
)

// Fallback is the color used when a sequence has no color nodes.
var Fallback = node.RGB{0, 0, 0}

// DefaultOpacity is used when a sequence has no opacity nodes.
const DefaultOpacity = 1.0

// Breakpoint is one merged gradient sample.
type Breakpoint struct {
	X    float64
	RGBA node.RGBA
}

// Merge returns one breakpoint for every distinct x present in either
// input, in increasing order. Colors and opacities are linearly
// interpolated between their own nodes and held flat past their ends.
func Merge(colors []node.Color, opacities []node.Opacity) []Breakpoint {
	if len(colors) == 0 && len(opacities) == 0 {
		return nil
	}
	if !node.IsSorted(colors) {
		colors = node.Clone(colors)
		node.Sort(colors)
	}
	if !node.IsSorted(opacities) {
		opacities = node.Clone(opacities)
		node.Sort(opacities)
	}

	xs := append(node.Xs(colors), node.Xs(opacities)...)
	slices.Sort(xs)
	xs = slices.Compact(xs)

	out := make([]Breakpoint, len(xs))
	for i, x := range xs {
		c := node.Sample(colors, x, Fallback)
		a := node.Sample(opacities, x, DefaultOpacity)
		out[i] = Breakpoint{X: x, RGBA: node.RGBA{c[0], c[1], c[2], a}}
	}
	return out
}

// At samples the merged gradient at x.
func At(bps []Breakpoint, x float64) node.RGBA {
	if len(bps) == 0 {
		return node.RGBA{Fallback[0], Fallback[1], Fallback[2], DefaultOpacity}
	}
	i, _ := slices.BinarySearchFunc(bps, x, func(b Breakpoint, x float64) int {
		switch {
		case b.X < x:
			return -1
		case b.X > x:
			return 1
		}
		return 0
	})
	if i < len(bps) && bps[i].X == x {
		return bps[i].RGBA
	}
	if i == 0 {
		return bps[0].RGBA
	}
	if i == len(bps) {
		return bps[len(bps)-1].RGBA
	}
	a, b := bps[i-1], bps[i]
	t := (x - a.X) / (b.X - a.X)
	var out node.RGBA
	for k := range out {
		out[k] = a.RGBA[k] + (b.RGBA[k]-a.RGBA[k])*t
	}
	return out
}

// Stop is a gradient stop with an offset normalized to [0, 1].
type Stop struct {
	Offset float64
	RGBA   node.RGBA
}

// Offsets converts breakpoints to gradient stops relative to r. A
// degenerate range puts every stop at offset 0.
func Offsets(bps []Breakpoint, r node.Range) []Stop {
	out := make([]Stop, len(bps))
	span := r.Span()
	for i, b := range bps {
		var off float64
		if span != 0 {
			off = (b.X - r.Min) / span
		}
		out[i] = Stop{Offset: min(max(off, 0), 1), RGBA: b.RGBA}
	}
	return out
}
