package histogram

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"coedit/internal/node"
)

func TestCompute(t *testing.T) {
	h := Compute([]float64{0, 1, 1, 2, 3, 4, 4, 4}, 4)
	want := []node.Opacity{
		{X: 0, Value: 1},
		{X: 1, Value: 2},
		{X: 2, Value: 1},
		{X: 3, Value: 4}, // last bucket includes the maximum
	}
	if d := cmp.Diff(want, h.Buckets); d != "" {
		t.Errorf("buckets mismatch (-want +got):\n%s", d)
	}
	if h.Width != 1 {
		t.Errorf("width = %g, want 1", h.Width)
	}
	if r := h.CountRange(); r != (node.Range{Min: 0, Max: 4}) {
		t.Errorf("CountRange = %v", r)
	}
}

func TestComputeDropsOutside(t *testing.T) {
	h := ComputeRange([]float64{-1, 0.5, 2, math.NaN()}, 2, node.Range{Min: 0, Max: 1})
	total := 0.0
	for _, b := range h.Buckets {
		total += b.Value
	}
	if total != 1 {
		t.Errorf("counted %g samples, want 1", total)
	}
}

func TestComputeDegenerate(t *testing.T) {
	h := Compute([]float64{7, 7, 7}, 1)
	if len(h.Buckets) != 1 || h.Buckets[0].Value != 3 {
		t.Fatalf("buckets = %v", h.Buckets)
	}
	if h.Range != (node.Range{Min: 6.5, Max: 7.5}) {
		t.Errorf("range = %v", h.Range)
	}
	if got := Compute(nil, 10); len(got.Buckets) != 0 {
		t.Errorf("empty input gave %v", got.Buckets)
	}
}

func TestLog10AndCenters(t *testing.T) {
	h := Histogram{
		Width:   2,
		Buckets: []node.Opacity{{X: 0, Value: 0}, {X: 2, Value: 100}},
	}
	lg := h.Log10()
	if lg.Buckets[0].Value != 0 || math.Abs(lg.Buckets[1].Value-2) > 1e-12 {
		t.Errorf("Log10 = %v", lg.Buckets)
	}
	if h.Buckets[1].Value != 100 {
		t.Error("Log10 modified the receiver")
	}
	got := h.Centers()
	if d := cmp.Diff([]float64{1, 3}, node.Xs(got), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("Centers mismatch (-want +got):\n%s", d)
	}
}
