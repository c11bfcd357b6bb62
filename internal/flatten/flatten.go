// Package flatten projects color nodes onto a single horizontal line so
// they can be edited like 1-D points, and folds edits made on that line
// back into full color nodes.
//
// The flat line only exposes x. Colors are never derived from it: an
// unflattened node keeps the color of the original node it is paired with,
// pairing is positional, and a node added on the line takes the color the
// original sequence already has at that x.
package flatten

import (
	"errors"
	"fmt"

	"coedit/internal/node"
)

// ErrStructuralMismatch indicates that a flat sequence and the original
// sequence it is paired with do not correspond.
var ErrStructuralMismatch = errors.New("flattened and original nodes do not correspond")

// MismatchError reports the sizes that failed to pair up.
type MismatchError struct {
	Flat     int
	Original int
	Pending  string
}

func (e *MismatchError) Error() string {
	if e.Pending != "" {
		return fmt.Sprintf("flatten: %d flat nodes, %d original nodes with pending %s",
			e.Flat, e.Original, e.Pending)
	}
	return fmt.Sprintf("flatten: %d flat nodes, %d original nodes", e.Flat, e.Original)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// Flatten returns one node per color node, at the same x, with every value
// set to y.
func Flatten(colors []node.Color, y float64) []node.Opacity {
	out := make([]node.Opacity, len(colors))
	for i, c := range colors {
		out[i] = node.Opacity{X: c.X, Value: y}
	}
	return out
}

// Unflatten pairs flat[i] with original[i] and returns the original nodes
// moved to the flat x coordinates.
func Unflatten(flat []node.Opacity, original []node.Color) ([]node.Color, error) {
	if len(flat) != len(original) {
		return nil, &MismatchError{Flat: len(flat), Original: len(original)}
	}
	out := make([]node.Color, len(flat))
	for i, f := range flat {
		out[i] = node.Color{X: f.X, Value: original[i].Value}
	}
	return out, nil
}

// Replay folds one edit made on the flat line into original and unflattens.
// flat is the flat sequence after e was applied to it.
func Replay(flat []node.Opacity, original []node.Color, e node.Edit[float64]) ([]node.Color, error) {
	mismatch := func() error {
		return &MismatchError{Flat: len(flat), Original: len(original), Pending: e.Kind.String()}
	}

	var (
		paired []node.Color
		err    error
	)
	switch e.Kind {
	case node.Added:
		if len(flat) != len(original)+1 || e.Index < 0 || e.Index >= len(flat) {
			return nil, mismatch()
		}
		x := flat[e.Index].X
		c := node.Color{X: x, Value: node.Sample(original, x, node.RGB{})}
		paired, err = node.InsertAt(original, e.Index, c)
	case node.Removed:
		if len(flat) != len(original)-1 {
			return nil, mismatch()
		}
		paired, err = node.Remove(original, e.Index)
	case node.Modified:
		if len(flat) != len(original) {
			return nil, mismatch()
		}
		paired, err = move(original, e.From, e.Index)
	default:
		return nil, fmt.Errorf("flatten: unknown edit kind %v", e.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("flatten: replay %s: %w", e.Kind, err)
	}
	return Unflatten(flat, paired)
}

func move(nodes []node.Color, from, to int) ([]node.Color, error) {
	if from < 0 || from >= len(nodes) {
		return nil, fmt.Errorf("move from %d of %d: %w", from, len(nodes), node.ErrIndex)
	}
	n := nodes[from]
	out, _ := node.Remove(nodes, from)
	return node.InsertAt(out, to, n)
}
