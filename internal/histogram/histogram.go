// Package histogram buckets scalar samples for the editor's background.
package histogram

import (
	"math"

	"coedit/internal/node"
)

// Histogram holds equally wide buckets. Bucket X is the left edge and Value
// the count.
type Histogram struct {
	Range   node.Range
	Width   float64
	Buckets []node.Opacity
}

// Compute buckets samples over their own range.
func Compute(samples []float64, bins int) Histogram {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo > hi {
		return Histogram{}
	}
	return ComputeRange(samples, bins, node.Range{Min: lo, Max: hi})
}

// ComputeRange buckets samples over r. The last bucket is closed on the
// right; samples outside r are dropped. A zero-width range is widened by
// one half on each side.
func ComputeRange(samples []float64, bins int, r node.Range) Histogram {
	if bins <= 0 {
		return Histogram{}
	}
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Degenerate() {
		r = node.Range{Min: r.Min - 0.5, Max: r.Max + 0.5}
	}

	h := Histogram{Range: r, Width: r.Span() / float64(bins)}
	h.Buckets = make([]node.Opacity, bins)
	for i := range h.Buckets {
		h.Buckets[i].X = r.Min + float64(i)*h.Width
	}
	for _, v := range samples {
		if !r.Contains(v) {
			continue
		}
		i := int((v - r.Min) / r.Span() * float64(bins))
		if i >= bins {
			i = bins - 1
		}
		h.Buckets[i].Value++
	}
	return h
}

// Log10 returns a copy with counts replaced by their base-10 logarithm.
// Empty buckets stay at 0.
func (h Histogram) Log10() Histogram {
	out := h
	out.Buckets = node.Clone(h.Buckets)
	for i, b := range out.Buckets {
		if b.Value > 0 {
			out.Buckets[i].Value = math.Log10(b.Value)
		} else {
			out.Buckets[i].Value = 0
		}
	}
	return out
}

// Centers returns the buckets keyed by their center instead of left edge.
func (h Histogram) Centers() []node.Opacity {
	out := node.Clone(h.Buckets)
	for i := range out {
		out[i].X += h.Width / 2
	}
	return out
}

// CountRange is [0, largest count].
func (h Histogram) CountRange() node.Range {
	r := node.Range{}
	for _, b := range h.Buckets {
		r.Max = math.Max(r.Max, b.Value)
	}
	return r
}
