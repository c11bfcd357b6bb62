package node

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrIndex is returned when an edit refers to a position outside a sequence.
var ErrIndex = errors.New("node index out of range")

// Clone returns a copy that does not share storage with nodes.
func Clone[T Value](nodes []Node[T]) []Node[T] {
	if nodes == nil {
		return nil
	}
	return slices.Clone(nodes)
}

// IsSorted reports whether nodes are in non-decreasing x order.
func IsSorted[T Value](nodes []Node[T]) bool {
	for i := 1; i < len(nodes); i++ {
		if nodes[i].X < nodes[i-1].X {
			return false
		}
	}
	return true
}

// Sort orders nodes by x in place, keeping the relative order of equal x.
func Sort[T Value](nodes []Node[T]) {
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].X < nodes[j].X })
}

// Xs returns the x coordinates of nodes.
func Xs[T Value](nodes []Node[T]) []float64 {
	xs := make([]float64, len(nodes))
	for i, n := range nodes {
		xs[i] = n.X
	}
	return xs
}

// upper returns the first index whose x is strictly greater than x.
func upper[T Value](nodes []Node[T], x float64) int {
	return sort.Search(len(nodes), func(i int) bool { return nodes[i].X > x })
}

// lower returns the first index whose x is greater or equal to x.
func lower[T Value](nodes []Node[T], x float64) int {
	return sort.Search(len(nodes), func(i int) bool { return nodes[i].X >= x })
}

// Insert places n after every node with the same or smaller x and returns
// the new sequence together with the index of n.
func Insert[T Value](nodes []Node[T], n Node[T]) ([]Node[T], int) {
	i := upper(nodes, n.X)
	return slices.Insert(Clone(nodes), i, n), i
}

// InsertBefore places n before every node with the same or larger x.
func InsertBefore[T Value](nodes []Node[T], n Node[T]) ([]Node[T], int) {
	i := lower(nodes, n.X)
	return slices.Insert(Clone(nodes), i, n), i
}

// InsertAt places n at index i regardless of order.
func InsertAt[T Value](nodes []Node[T], i int, n Node[T]) ([]Node[T], error) {
	if i < 0 || i > len(nodes) {
		return nil, fmt.Errorf("insert at %d of %d: %w", i, len(nodes), ErrIndex)
	}
	return slices.Insert(Clone(nodes), i, n), nil
}

// Remove deletes the node at index i.
func Remove[T Value](nodes []Node[T], i int) ([]Node[T], error) {
	if i < 0 || i >= len(nodes) {
		return nil, fmt.Errorf("remove %d of %d: %w", i, len(nodes), ErrIndex)
	}
	return slices.Delete(Clone(nodes), i, i+1), nil
}

// Linear spreads values evenly over r, first value at r.Min and last at r.Max.
func Linear[T Value](values []T, r Range) []Node[T] {
	if len(values) == 0 {
		return nil
	}
	dx := (r.Max - r.Min) / float64(max(len(values)-1, 1))
	out := make([]Node[T], len(values))
	for i, v := range values {
		out[i] = Node[T]{X: r.Min + float64(i)*dx, Value: v}
	}
	return out
}

// Sample evaluates the piecewise-linear curve through nodes at x.
// Outside the span of nodes the nearest endpoint value is used; an empty
// sequence yields def.
func Sample[T Value](nodes []Node[T], x float64, def T) T {
	if len(nodes) == 0 {
		return def
	}
	i := upper(nodes, x)
	if i == 0 {
		return nodes[0].Value
	}
	if i == len(nodes) {
		return nodes[len(nodes)-1].Value
	}
	a, b := nodes[i-1], nodes[i]
	if b.X == a.X {
		return b.Value
	}
	return Lerp(a.Value, b.Value, (x-a.X)/(b.X-a.X))
}

// Lerp interpolates linearly between a and b.
func Lerp[T Value](a, b T, t float64) T {
	switch av := any(a).(type) {
	case float64:
		bv := any(b).(float64)
		return any(av + (bv-av)*t).(T)
	case RGB:
		bv := any(b).(RGB)
		var out RGB
		for i := range out {
			out[i] = av[i] + (bv[i]-av[i])*t
		}
		return any(out).(T)
	}
	return a
}
