package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"coedit/internal/node"
)

func op(x, v float64) node.Opacity { return node.Opacity{X: x, Value: v} }

func TestToViewportEndpoints(t *testing.T) {
	s := Scaler{
		X:        node.Range{Min: 0, Max: 255},
		Viewport: node.Viewport{Width: 300, Height: 100},
	}
	got := s.ToViewport([]node.Opacity{op(0, 0), op(255, 1)})
	want := []node.Opacity{op(0, 100), op(300, 0)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("ToViewport mismatch (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	type testCase struct {
		x, y node.Range
		vp   node.Viewport
	}
	testCases := []testCase{
		{node.Range{Min: 0, Max: 255}, node.Range{Min: 0, Max: 1}, node.Viewport{Width: 300, Height: 100}},
		{node.Range{Min: -3, Max: 17}, node.Range{Min: 0, Max: 4.2}, node.Viewport{Width: 640, Height: 90, Padding: node.Uniform(8)}},
		{node.Range{Min: 1e-3, Max: 2e-3}, node.Range{Min: -1, Max: 1}, node.Viewport{Width: 57, Height: 33, Padding: node.Padding{Left: 3, Right: 11, Top: 2, Bottom: 5}}},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for i, tc := range testCases {
		s := Scaler{X: tc.x, Y: &tc.y, Viewport: tc.vp}
		var nodes []node.Opacity
		for k := 0; k <= 10; k++ {
			f := float64(k) / 10
			nodes = append(nodes, op(tc.x.Min+f*tc.x.Span(), tc.y.Max-f*tc.y.Span()))
		}
		got := s.ToData(s.ToViewport(nodes))
		if d := cmp.Diff(nodes, got, approx); d != "" {
			t.Errorf("%d: round trip mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestDegenerateRange(t *testing.T) {
	vp := node.Viewport{Width: 200, Height: 50, Padding: node.Padding{Left: 7, Right: 3, Top: 2, Bottom: 4}}
	y := node.Range{Min: 0.5, Max: 0.5}
	s := Scaler{X: node.Range{Min: 42, Max: 42}, Y: &y, Viewport: vp}

	for _, x := range []float64{41, 42, 43} {
		if px := s.XToPixel(x); px != 7 {
			t.Errorf("XToPixel(%g) = %g, want padding origin 7", x, px)
		}
	}
	if x := s.PixelToX(7); x != 42 {
		t.Errorf("PixelToX(7) = %g, want range min", x)
	}
	if x := s.PixelToX(150); x != 42 {
		t.Errorf("PixelToX(150) = %g, want range min", x)
	}
	if v := s.PixelToY(10); v != 0.5 {
		t.Errorf("PixelToY = %g, want range min", v)
	}
	for _, px := range []float64{s.XToPixel(1), s.YToPixel(1)} {
		if math.IsNaN(px) || math.IsInf(px, 0) {
			t.Errorf("degenerate range produced %g", px)
		}
	}
}

func TestClamping(t *testing.T) {
	s := Scaler{
		X:        node.Range{Min: 0, Max: 10},
		Viewport: node.Viewport{Width: 110, Height: 60, Padding: node.Uniform(5)},
	}
	if px := s.XToPixel(-4); px != 5 {
		t.Errorf("XToPixel(-4) = %g, want 5", px)
	}
	if px := s.XToPixel(20); px != 105 {
		t.Errorf("XToPixel(20) = %g, want 105", px)
	}
	if py := s.YToPixel(2); py != 5 {
		t.Errorf("YToPixel(2) = %g, want top inset 5", py)
	}
	if x := s.PixelToX(-50); x != 0 {
		t.Errorf("PixelToX(-50) = %g, want 0", x)
	}
	if x := s.PixelToX(500); x != 10 {
		t.Errorf("PixelToX(500) = %g, want 10", x)
	}
	if v := s.PixelToY(500); v != 0 {
		t.Errorf("PixelToY(500) = %g, want 0", v)
	}
}

func TestColorsKeepValue(t *testing.T) {
	s := Scaler{X: node.Range{Min: 0, Max: 1}, Viewport: node.Viewport{Width: 100, Height: 10}}
	in := []node.Color{{X: 0.25, Value: node.RGB{0.1, 0.2, 0.3}}}
	vp := s.ColorsToViewport(in)
	if vp[0].X != 25 || vp[0].Value != in[0].Value {
		t.Errorf("ColorsToViewport = %v", vp)
	}
	back := s.ColorsToData(vp)
	if d := cmp.Diff(in, back); d != "" {
		t.Errorf("colors round trip (-want +got):\n%s", d)
	}
}
