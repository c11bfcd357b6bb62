// Package controls implements pointer-driven editing of a node sequence in
// viewport space.
//
// A Controls value holds no node data between sessions. The caller passes
// its current snapshot on pointer-down; from then until pointer-up the
// session works on a private copy and reports every change through
// OnEdit, which is the only way edits leave the package.
package controls

import (
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"coedit/internal/node"
)

type State int

const (
	Idle State = iota
	Dragging
	Committing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committing:
		return "committing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrInvalidRemoval is returned when a removal targets the first or
	// last node. The sequence is left unchanged.
	ErrInvalidRemoval = errors.New("boundary nodes cannot be removed")

	// ErrBusy is returned by Remove while a drag session is active.
	ErrBusy = errors.New("drag in progress")
)

// Controls is the add/remove/drag state machine for one plot.
type Controls struct {
	// HandleRadius is the pick distance around a node, in pixels.
	HandleRadius float64
	// AllowInsert lets a pointer-down away from every node add one.
	AllowInsert bool
	// LockY keeps the vertical position of nodes fixed while dragging.
	LockY bool
	// Viewport bounds every position produced by a drag.
	Viewport node.Viewport

	OnEdit func(node.Edit[float64])
	Logger *slog.Logger
	ID     string

	state State
	work  []node.Opacity
	index int
	last  node.Opacity
}

func (c *Controls) State() State { return c.state }

// Active returns the index of the node being dragged.
func (c *Controls) Active() (int, bool) {
	if c.state == Idle {
		return 0, false
	}
	return c.index, true
}

// Nodes returns the session copy of the nodes, or nil when idle.
func (c *Controls) Nodes() []node.Opacity {
	if c.state == Idle {
		return nil
	}
	return node.Clone(c.work)
}

// Hit returns the node nearest to p that lies within HandleRadius.
// Ties go to the lower index.
func (c *Controls) Hit(p vec.Vec2, nodes []node.Opacity) (int, bool) {
	best, bestD := -1, c.HandleRadius
	for i, n := range nodes {
		d := p.Sub(vec.Vec2{X: n.X, Y: n.Value}).Length()
		if d <= bestD && (best < 0 || d < bestD) {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}

// Down starts a drag session. It reports whether a session was started.
func (c *Controls) Down(p vec.Vec2, nodes []node.Opacity) bool {
	if c.state != Idle {
		c.logger().Debug("pointer down ignored", "id", c.ID, "state", c.state)
		return false
	}
	i, ok := c.Hit(p, nodes)
	if ok {
		c.work = node.Clone(nodes)
	} else {
		if !c.AllowInsert {
			return false
		}
		n := c.clamp(p)
		if c.LockY && len(nodes) > 0 {
			n.Value = node.Sample(nodes, n.X, n.Value)
		}
		c.work, i = node.Insert(nodes, n)
		c.emit(node.Edit[float64]{Kind: node.Added, Index: i, From: i, Node: n})
	}
	c.state = Dragging
	c.index = i
	c.last = c.work[i]
	c.logger().Debug("drag started", "id", c.ID, "index", i)
	return true
}

// Move drags the active node to p. It reports whether a modification was
// emitted.
func (c *Controls) Move(p vec.Vec2) bool {
	if c.state != Dragging {
		return false
	}
	return c.drag(p)
}

// Up commits the position at p and ends the session.
func (c *Controls) Up(p vec.Vec2) bool {
	if c.state != Dragging {
		return false
	}
	c.state = Committing
	c.drag(p)
	c.logger().Debug("drag committed", "id", c.ID, "index", c.index)
	c.state = Idle
	c.work = nil
	return true
}

// Remove deletes the node under p. Boundary nodes are refused with
// ErrInvalidRemoval; a miss is a no-op.
func (c *Controls) Remove(p vec.Vec2, nodes []node.Opacity) error {
	if c.state != Idle {
		return ErrBusy
	}
	i, ok := c.Hit(p, nodes)
	if !ok {
		return nil
	}
	if i == 0 || i == len(nodes)-1 {
		c.logger().Debug("removal refused", "id", c.ID, "index", i)
		return ErrInvalidRemoval
	}
	c.emit(node.Edit[float64]{Kind: node.Removed, Index: i, From: i, Node: nodes[i]})
	return nil
}

func (c *Controls) drag(p vec.Vec2) bool {
	cur := c.work[c.index]
	n := c.clamp(p)
	if c.LockY {
		n.Value = cur.Value
	}
	if n == c.last {
		return false
	}

	from := c.index
	rest, _ := node.Remove(c.work, from)
	to := from
	switch {
	case n.X > cur.X:
		c.work, to = node.Insert(rest, n)
	case n.X < cur.X:
		c.work, to = node.InsertBefore(rest, n)
	default:
		c.work, _ = node.InsertAt(rest, from, n)
	}
	c.index = to
	c.last = n
	c.emit(node.Edit[float64]{Kind: node.Modified, Index: to, From: from, Node: n})
	return true
}

func (c *Controls) clamp(p vec.Vec2) node.Opacity {
	return node.Opacity{X: c.Viewport.ClampX(p.X), Value: c.Viewport.ClampY(p.Y)}
}

func (c *Controls) emit(e node.Edit[float64]) {
	c.logger().Debug("edit", "id", c.ID, "edit", e.String())
	if c.OnEdit != nil {
		c.OnEdit(e)
	}
}

func (c *Controls) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
