package node

import "math"

// RGB is a color with unit float channels.
type RGB [3]float64

// RGBA is a color with unit float channels and alpha.
type RGBA [4]float64

// Value is the set of channel values a node can carry.
type Value interface {
	float64 | RGB
}

// Node is one control point of a piecewise-linear transfer function.
type Node[T Value] struct {
	X     float64
	Value T
}

type (
	Opacity = Node[float64]
	Color   = Node[RGB]
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Span returns the absolute width of the range.
func (r Range) Span() float64 { return math.Abs(r.Max - r.Min) }

// Degenerate reports whether the range has zero width.
func (r Range) Degenerate() bool { return r.Span() == 0 }

func (r Range) Contains(v float64) bool {
	lo, hi := r.bounds()
	return v >= lo && v <= hi
}

// Clamp limits v to the range. Reversed ranges are accepted.
func (r Range) Clamp(v float64) float64 {
	lo, hi := r.bounds()
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r Range) bounds() (float64, float64) {
	if r.Max < r.Min {
		return r.Max, r.Min
	}
	return r.Min, r.Max
}

// Padding holds pixel insets that exclude an edge margin from plotting.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Uniform returns a padding with the same inset on every edge.
func Uniform(p float64) Padding {
	return Padding{Left: p, Right: p, Top: p, Bottom: p}
}

// Viewport is the drawing surface in pixels.
type Viewport struct {
	Width   float64
	Height  float64
	Padding Padding
}

func (v Viewport) Left() float64 { return v.Padding.Left }
func (v Viewport) Top() float64  { return v.Padding.Top }

// Right is the rightmost usable pixel position; never left of Left.
func (v Viewport) Right() float64 { return math.Max(v.Left(), v.Width-v.Padding.Right) }

// Bottom is the lowest usable pixel position; never above Top.
func (v Viewport) Bottom() float64 { return math.Max(v.Top(), v.Height-v.Padding.Bottom) }

func (v Viewport) ContentWidth() float64  { return v.Right() - v.Left() }
func (v Viewport) ContentHeight() float64 { return v.Bottom() - v.Top() }

// ClampX limits px to the usable horizontal extent.
func (v Viewport) ClampX(px float64) float64 {
	return math.Min(math.Max(px, v.Left()), v.Right())
}

// ClampY limits py to the usable vertical extent.
func (v Viewport) ClampY(py float64) float64 {
	return math.Min(math.Max(py, v.Top()), v.Bottom())
}
