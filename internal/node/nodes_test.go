package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRange(t *testing.T) {
	type testCase struct {
		r          Range
		span       float64
		degenerate bool
	}
	testCases := []testCase{
		{Range{0, 255}, 255, false},
		{Range{-1, 1}, 2, false},
		{Range{3, 3}, 0, true},
		{Range{1, -1}, 2, false},
	}
	for i, tc := range testCases {
		if got := tc.r.Span(); got != tc.span {
			t.Errorf("%d: Span() = %g, want %g", i, got, tc.span)
		}
		if got := tc.r.Degenerate(); got != tc.degenerate {
			t.Errorf("%d: Degenerate() = %v, want %v", i, got, tc.degenerate)
		}
	}

	r := Range{Min: 10, Max: 0}
	if got := r.Clamp(-3); got != 0 {
		t.Errorf("reversed Clamp(-3) = %g, want 0", got)
	}
	if got := r.Clamp(12); got != 10 {
		t.Errorf("reversed Clamp(12) = %g, want 10", got)
	}
}

func TestViewportNeverInverts(t *testing.T) {
	vp := Viewport{Width: 10, Height: 6, Padding: Uniform(8)}
	if vp.ContentWidth() != 0 || vp.ContentHeight() != 0 {
		t.Errorf("content = %gx%g, want 0x0", vp.ContentWidth(), vp.ContentHeight())
	}
	if got := vp.ClampX(100); got != 8 {
		t.Errorf("ClampX(100) = %g, want 8", got)
	}
}

func TestInsertTieBreak(t *testing.T) {
	nodes := []Opacity{{0, 0}, {5, 0.5}, {10, 1}}

	after, i := Insert(nodes, Opacity{X: 5, Value: 0.9})
	if i != 2 {
		t.Errorf("Insert index = %d, want 2", i)
	}
	before, j := InsertBefore(nodes, Opacity{X: 5, Value: 0.9})
	if j != 1 {
		t.Errorf("InsertBefore index = %d, want 1", j)
	}
	if !IsSorted(after) || !IsSorted(before) {
		t.Error("insert broke ordering")
	}
	if len(nodes) != 3 {
		t.Error("insert modified its input")
	}
}

func TestRemove(t *testing.T) {
	nodes := []Opacity{{0, 0}, {5, 0.5}, {10, 1}}
	out, err := Remove(nodes, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]Opacity{{0, 0}, {10, 1}}, out); d != "" {
		t.Errorf("Remove mismatch (-want +got):\n%s", d)
	}
	if _, err := Remove(nodes, 3); !errors.Is(err, ErrIndex) {
		t.Errorf("Remove(3) err = %v, want ErrIndex", err)
	}
}

func TestLinear(t *testing.T) {
	got := Linear([]float64{0, 1}, Range{0, 255})
	want := []Opacity{{0, 0}, {255, 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Linear mismatch (-want +got):\n%s", d)
	}

	colors := Linear([]RGB{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}, Range{-1, 1})
	if d := cmp.Diff([]float64{-1, 0, 1}, Xs(colors)); d != "" {
		t.Errorf("Linear x mismatch (-want +got):\n%s", d)
	}

	single := Linear([]float64{0.5}, Range{2, 4})
	if len(single) != 1 || single[0].X != 2 {
		t.Errorf("Linear single = %v", single)
	}
	if Linear[float64](nil, Range{0, 1}) != nil {
		t.Error("Linear(nil) should be nil")
	}
}

func TestSample(t *testing.T) {
	nodes := []Opacity{{0, 0}, {10, 1}, {20, 0.5}}
	type testCase struct {
		x, want float64
	}
	testCases := []testCase{
		{-5, 0},
		{0, 0},
		{5, 0.5},
		{10, 1},
		{15, 0.75},
		{20, 0.5},
		{99, 0.5},
	}
	for _, tc := range testCases {
		if got := Sample(nodes, tc.x, 1); got != tc.want {
			t.Errorf("Sample(%g) = %g, want %g", tc.x, got, tc.want)
		}
	}
	if got := Sample(nil, 3, 0.25); got != 0.25 {
		t.Errorf("Sample(empty) = %g, want default", got)
	}

	colors := []Color{{0, RGB{0, 0, 0}}, {1, RGB{1, 0.5, 0}}}
	got := Sample(colors, 0.5, RGB{})
	if d := cmp.Diff(RGB{0.5, 0.25, 0}, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("Sample color mismatch (-want +got):\n%s", d)
	}
}

func TestApply(t *testing.T) {
	nodes := []Opacity{{0, 0}, {5, 0.5}, {10, 1}}

	added, err := Apply(nodes, Edit[float64]{Kind: Added, Index: 1, Node: Opacity{2, 0.2}})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0, 2, 5, 10}, Xs(added)); d != "" {
		t.Errorf("added mismatch (-want +got):\n%s", d)
	}

	moved, err := Apply(nodes, Edit[float64]{Kind: Modified, From: 1, Index: 2, Node: Opacity{12, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]Opacity{{0, 0}, {10, 1}, {12, 0.5}}, moved); d != "" {
		t.Errorf("modified mismatch (-want +got):\n%s", d)
	}

	removed, err := Apply(nodes, Edit[float64]{Kind: Removed, Index: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 2 {
		t.Errorf("removed len = %d, want 2", len(removed))
	}

	if _, err := Apply(nodes, Edit[float64]{Kind: Modified, From: 7}); !errors.Is(err, ErrIndex) {
		t.Errorf("bad From err = %v, want ErrIndex", err)
	}
	if _, err := Apply(nodes, Edit[float64]{Kind: Modified, From: 1, Index: 5, Node: Opacity{5, 0.5}}); !errors.Is(err, ErrIndex) {
		t.Errorf("bad Index err = %v, want ErrIndex", err)
	}
	if d := cmp.Diff([]Opacity{{0, 0}, {5, 0.5}, {10, 1}}, nodes); d != "" {
		t.Errorf("input changed (-want +got):\n%s", d)
	}
}

func TestStoreNotifies(t *testing.T) {
	s := NewStore([]Opacity{{10, 1}, {0, 0}}, nil)
	if !IsSorted(s.Opacity()) {
		t.Fatal("store did not sort its input")
	}

	var got []Opacity
	s.OnOpacity = func(nodes []Opacity) { got = nodes }
	if err := s.ApplyOpacity(Edit[float64]{Kind: Added, Index: 1, Node: Opacity{5, 0.3}}); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]Opacity{{0, 0}, {5, 0.3}, {10, 1}}, got); d != "" {
		t.Errorf("OnOpacity mismatch (-want +got):\n%s", d)
	}

	got = nil
	if err := s.ApplyOpacity(Edit[float64]{Kind: Removed, Index: 9}); err == nil {
		t.Error("expected error for bad removal")
	}
	if got != nil {
		t.Error("failed edit should not notify")
	}
	if len(s.Opacity()) != 3 {
		t.Error("failed edit changed the store")
	}
}
