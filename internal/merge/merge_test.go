package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"coedit/internal/node"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestMergeUnion(t *testing.T) {
	colors := []node.Color{
		{X: 0, Value: node.RGB{1, 0, 0}},
		{X: 10, Value: node.RGB{0, 0, 1}},
	}
	opacities := []node.Opacity{
		{X: 0, Value: 0},
		{X: 5, Value: 1},
		{X: 20, Value: 0.5},
	}
	got := Merge(colors, opacities)
	want := []Breakpoint{
		{X: 0, RGBA: node.RGBA{1, 0, 0, 0}},
		{X: 5, RGBA: node.RGBA{0.5, 0, 0.5, 1}},
		{X: 10, RGBA: node.RGBA{0, 0, 1, 1 - 0.5*5.0/15}},
		{X: 20, RGBA: node.RGBA{0, 0, 1, 0.5}},
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", d)
	}
	for i := 1; i < len(got); i++ {
		if got[i].X <= got[i-1].X {
			t.Errorf("breakpoints not strictly increasing at %d", i)
		}
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("Merge(nil, nil) = %v, want empty", got)
	}

	got := Merge(nil, []node.Opacity{{X: 1, Value: 0.25}, {X: 2, Value: 0.75}})
	want := []Breakpoint{
		{X: 1, RGBA: node.RGBA{0, 0, 0, 0.25}},
		{X: 2, RGBA: node.RGBA{0, 0, 0, 0.75}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("missing colors (-want +got):\n%s", d)
	}

	got = Merge([]node.Color{{X: 3, Value: node.RGB{0.2, 0.4, 0.6}}}, nil)
	want = []Breakpoint{{X: 3, RGBA: node.RGBA{0.2, 0.4, 0.6, 1}}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("missing opacity (-want +got):\n%s", d)
	}
}

func TestMergeUnsortedInput(t *testing.T) {
	opacities := []node.Opacity{{X: 4, Value: 1}, {X: 0, Value: 0}}
	got := Merge(nil, opacities)
	if len(got) != 2 || got[0].X != 0 || got[1].X != 4 {
		t.Errorf("Merge unsorted = %v", got)
	}
	if opacities[0].X != 4 {
		t.Error("Merge reordered its input")
	}
}

func TestAt(t *testing.T) {
	bps := []Breakpoint{
		{X: 0, RGBA: node.RGBA{0, 0, 0, 0}},
		{X: 10, RGBA: node.RGBA{1, 1, 1, 1}},
	}
	type testCase struct {
		x    float64
		want node.RGBA
	}
	testCases := []testCase{
		{-1, node.RGBA{0, 0, 0, 0}},
		{0, node.RGBA{0, 0, 0, 0}},
		{2.5, node.RGBA{0.25, 0.25, 0.25, 0.25}},
		{10, node.RGBA{1, 1, 1, 1}},
		{11, node.RGBA{1, 1, 1, 1}},
	}
	for _, tc := range testCases {
		if d := cmp.Diff(tc.want, At(bps, tc.x), approx); d != "" {
			t.Errorf("At(%g) mismatch (-want +got):\n%s", tc.x, d)
		}
	}
}

func TestOffsets(t *testing.T) {
	bps := []Breakpoint{{X: 10}, {X: 15}, {X: 20}}
	got := Offsets(bps, node.Range{Min: 10, Max: 20})
	offs := []float64{got[0].Offset, got[1].Offset, got[2].Offset}
	if d := cmp.Diff([]float64{0, 0.5, 1}, offs); d != "" {
		t.Errorf("Offsets mismatch (-want +got):\n%s", d)
	}
	for _, s := range Offsets(bps, node.Range{Min: 3, Max: 3}) {
		if s.Offset != 0 {
			t.Errorf("degenerate offset = %g", s.Offset)
		}
	}
}
