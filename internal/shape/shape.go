// Package shape derives the fill silhouette drawn behind a transfer
// function editor. All inputs and outputs are in viewport pixels.
package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"

	"coedit/internal/node"
)

// Mode selects how the background silhouette is derived.
type Mode int

const (
	Opacity Mode = iota
	Histograms
	Full
)

// Modes lists every mode in cycling order.
var Modes = []Mode{Opacity, Histograms, Full}

var ErrUnknownMode = errors.New("unknown background shape")

func (m Mode) String() string {
	switch m {
	case Opacity:
		return "opacity"
	case Histograms:
		return "histograms"
	case Full:
		return "full"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next returns the mode following m in Modes.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Shape is a closed polygon; the edge from the last vertex back to the
// first is implied.
type Shape []vec.Vec2

// Bounds returns the bounding box corners of s.
func (s Shape) Bounds() (lo, hi vec.Vec2) {
	if len(s) == 0 {
		return
	}
	lo, hi = s[0], s[0]
	for _, p := range s[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Rect covers the usable plotting area.
func Rect(vp node.Viewport) Shape {
	l, r, t, b := vp.Left(), vp.Right(), vp.Top(), vp.Bottom()
	return Shape{{X: l, Y: t}, {X: r, Y: t}, {X: r, Y: b}, {X: l, Y: b}}
}

// OpacityCurve is the area under the polyline through nodes, closed down to the
// bottom edge. Fewer than two nodes give an empty shape.
func OpacityCurve(nodes []node.Opacity, vp node.Viewport) Shape {
	if len(nodes) < 2 {
		return nil
	}
	bottom := vp.Bottom()
	out := make(Shape, 0, len(nodes)+2)
	for _, n := range nodes {
		out = append(out, vec.Vec2{X: n.X, Y: n.Value})
	}
	out = append(out,
		vec.Vec2{X: nodes[len(nodes)-1].X, Y: bottom},
		vec.Vec2{X: nodes[0].X, Y: bottom},
	)
	return out
}

// Histogram is a step silhouette over bins whose X is the bin center and
// Value the bar top. Bins are assumed equally spaced and the width comes
// from the first two centers; a single bin spans the whole plot width.
func Histogram(bins []node.Opacity, vp node.Viewport) Shape {
	if len(bins) == 0 {
		return nil
	}
	bottom := vp.Bottom()
	if len(bins) == 1 {
		l, r, y := vp.Left(), vp.Right(), vp.ClampY(bins[0].Value)
		return Shape{{X: l, Y: bottom}, {X: l, Y: y}, {X: r, Y: y}, {X: r, Y: bottom}}
	}

	half := math.Abs(bins[1].X-bins[0].X) / 2
	out := make(Shape, 0, 2*len(bins)+2)
	first := vp.ClampX(bins[0].X - half)
	out = append(out, vec.Vec2{X: first, Y: bottom})
	for _, b := range bins {
		y := vp.ClampY(b.Value)
		out = append(out,
			vec.Vec2{X: vp.ClampX(b.X - half), Y: y},
			vec.Vec2{X: vp.ClampX(b.X + half), Y: y},
		)
	}
	last := vp.ClampX(bins[len(bins)-1].X + half)
	out = append(out, vec.Vec2{X: last, Y: bottom})
	return out
}

// Generate dispatches on mode. nodes are opacity nodes for Opacity and
// bins for Histograms; Full ignores them.
func Generate(mode Mode, nodes []node.Opacity, vp node.Viewport) Shape {
	switch mode {
	case Opacity:
		return OpacityCurve(nodes, vp)
	case Histograms:
		return Histogram(nodes, vp)
	}
	return Rect(vp)
}
