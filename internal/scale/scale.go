// Package scale maps control points between data space and viewport pixels.
//
// The x axis grows to the right from the left padding inset. The y axis
// grows downward as on any raster surface, so the minimum of the value
// range sits on the bottom inset and the maximum on the top inset.
package scale

import (
	"seehuhn.de/go/geom/vec"

	"coedit/internal/node"
)

// Scaler converts between data space and viewport space for one plot.
type Scaler struct {
	X node.Range
	// Y is the value range of opacity nodes. Nil means values are already
	// normalized to [0, 1].
	Y        *node.Range
	Viewport node.Viewport
}

var unit = node.Range{Min: 0, Max: 1}

func (s Scaler) yRange() node.Range {
	if s.Y == nil {
		return unit
	}
	return *s.Y
}

// fraction returns the position of v inside r in [0, 1]. A zero-width range
// maps everything to 0.
func fraction(v float64, r node.Range) float64 {
	span := r.Span()
	if span == 0 {
		return 0
	}
	return (v - r.Min) / span
}

func XToPixel(x float64, r node.Range, vp node.Viewport) float64 {
	return vp.ClampX(vp.Left() + fraction(x, r)*vp.ContentWidth())
}

func PixelToX(px float64, r node.Range, vp node.Viewport) float64 {
	w := vp.ContentWidth()
	if w == 0 || r.Degenerate() {
		return r.Min
	}
	return r.Clamp(r.Min + (px-vp.Left())/w*r.Span())
}

func YToPixel(y float64, r node.Range, vp node.Viewport) float64 {
	return vp.ClampY(vp.Bottom() - fraction(y, r)*vp.ContentHeight())
}

func PixelToY(py float64, r node.Range, vp node.Viewport) float64 {
	h := vp.ContentHeight()
	if h == 0 || r.Degenerate() {
		return r.Min
	}
	return r.Clamp(r.Min + (vp.Bottom()-py)/h*r.Span())
}

func (s Scaler) XToPixel(x float64) float64  { return XToPixel(x, s.X, s.Viewport) }
func (s Scaler) PixelToX(px float64) float64 { return PixelToX(px, s.X, s.Viewport) }
func (s Scaler) YToPixel(y float64) float64  { return YToPixel(y, s.yRange(), s.Viewport) }
func (s Scaler) PixelToY(py float64) float64 { return PixelToY(py, s.yRange(), s.Viewport) }

// ToViewport converts data-space opacity nodes to pixel positions. The
// returned node carries the pixel y in Value.
func (s Scaler) ToViewport(nodes []node.Opacity) []node.Opacity {
	out := make([]node.Opacity, len(nodes))
	for i, n := range nodes {
		out[i] = node.Opacity{X: s.XToPixel(n.X), Value: s.YToPixel(n.Value)}
	}
	return out
}

// ToData is the inverse of ToViewport.
func (s Scaler) ToData(nodes []node.Opacity) []node.Opacity {
	out := make([]node.Opacity, len(nodes))
	for i, n := range nodes {
		out[i] = s.NodeToData(n)
	}
	return out
}

func (s Scaler) NodeToData(n node.Opacity) node.Opacity {
	return node.Opacity{X: s.PixelToX(n.X), Value: s.PixelToY(n.Value)}
}

// ColorsToViewport converts only the x coordinate of color nodes.
func (s Scaler) ColorsToViewport(nodes []node.Color) []node.Color {
	out := make([]node.Color, len(nodes))
	for i, n := range nodes {
		out[i] = node.Color{X: s.XToPixel(n.X), Value: n.Value}
	}
	return out
}

func (s Scaler) ColorsToData(nodes []node.Color) []node.Color {
	out := make([]node.Color, len(nodes))
	for i, n := range nodes {
		out[i] = node.Color{X: s.PixelToX(n.X), Value: n.Value}
	}
	return out
}

// Point returns the pixel position of a viewport-space opacity node.
func Point(n node.Opacity) vec.Vec2 {
	return vec.Vec2{X: n.X, Y: n.Value}
}

// FromPoint is the inverse of Point.
func FromPoint(p vec.Vec2) node.Opacity {
	return node.Opacity{X: p.X, Value: p.Y}
}
