package node

import (
	"fmt"
	"slices"
)

// Kind classifies an edit emitted by an interactive control.
type Kind int

const (
	Added Kind = iota
	Modified
	Removed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Edit describes one change to a node sequence.
//
// Index is the position of Node after the edit (for Removed, the position it
// was removed from). From is the position before the edit and is only
// meaningful for Modified, where a drag may have moved the node past a
// neighbor.
type Edit[T Value] struct {
	Kind  Kind
	Index int
	From  int
	Node  Node[T]
}

func (e Edit[T]) String() string {
	switch e.Kind {
	case Removed:
		return fmt.Sprintf("removed #%d", e.Index)
	case Modified:
		if e.From != e.Index {
			return fmt.Sprintf("modified #%d->#%d x=%.4g", e.From, e.Index, e.Node.X)
		}
		return fmt.Sprintf("modified #%d x=%.4g", e.Index, e.Node.X)
	}
	return fmt.Sprintf("%s #%d x=%.4g", e.Kind, e.Index, e.Node.X)
}

// Apply returns a copy of nodes with e applied. The result is sorted by x.
func Apply[T Value](nodes []Node[T], e Edit[T]) ([]Node[T], error) {
	var (
		out []Node[T]
		err error
	)
	switch e.Kind {
	case Added:
		out, err = InsertAt(nodes, e.Index, e.Node)
	case Modified:
		if e.From < 0 || e.From >= len(nodes) {
			return nil, fmt.Errorf("modify %d of %d: %w", e.From, len(nodes), ErrIndex)
		}
		out = slices.Delete(Clone(nodes), e.From, e.From+1)
		out, err = InsertAt(out, e.Index, e.Node)
	case Removed:
		out, err = Remove(nodes, e.Index)
	default:
		return nil, fmt.Errorf("unknown edit kind %v", e.Kind)
	}
	if err != nil {
		return nil, err
	}
	if !IsSorted(out) {
		Sort(out)
	}
	return out, nil
}
