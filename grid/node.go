package grid

import (
	"fmt"
	"strings"

	"github.com/voxpath/voxpath/seq"
)

// Node is a single grid cell: an immutable coordinate, an owned list of
// outgoing edges, and the mutable scratch state of the current search
// (cost-from-start g, estimated total cost f, came-from link).
//
// Nodes are created by Graph construction and never outlive their Graph.
type Node struct {
	coord    Coord
	edges    *seq.Seq[Edge]
	cameFrom Coord
	hasCame  bool
	g        int64
	f        int64
	passable bool
}

// NewNode creates a node at (x,y,z) with an empty edge list and g = f = Inf.
func NewNode(x, y, z int, passable bool) *Node {
	return &Node{
		coord:    Coord{X: x, Y: y, Z: z},
		edges:    seq.New[Edge](),
		g:        Inf,
		f:        Inf,
		passable: passable,
	}
}

// Coord returns the node's coordinate.
func (n *Node) Coord() Coord { return n.coord }

// G returns the cost of the cheapest known path from the search start to
// this node, or Inf if none is known.
func (n *Node) G() int64 { return n.g }

// SetG records the cost-from-start.
func (n *Node) SetG(g int64) { n.g = g }

// F returns the estimated total path cost through this node, or Inf.
// F is the open-set priority.
func (n *Node) F() int64 { return n.f }

// SetF records the estimated total cost.
func (n *Node) SetF(f int64) { n.f = f }

// CameFrom returns the coordinate of the predecessor on the current search
// path. ok is false when no predecessor has been recorded.
func (n *Node) CameFrom() (c Coord, ok bool) {
	return n.cameFrom, n.hasCame
}

// SetCameFrom records c as the predecessor on the current search path.
func (n *Node) SetCameFrom(c Coord) {
	n.cameFrom = c
	n.hasCame = true
}

// Passable reports whether the search may enter this cell.
func (n *Node) Passable() bool { return n.passable }

// Reset clears the search scratch state: came-from, g and f return to their
// initial sentinels. Edges, coordinate and passability are untouched.
// Idempotent; callable any number of times.
func (n *Node) Reset() {
	n.hasCame = false
	n.cameFrom = Coord{}
	n.g = Inf
	n.f = Inf
}

// Edges returns a snapshot of the node's outgoing edges.
func (n *Node) Edges() []Edge {
	out := make([]Edge, 0, n.edges.Len())
	for i := 0; i < n.edges.Len(); i++ {
		e, _ := n.edges.Get(i)
		out = append(out, e)
	}

	return out
}

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return n.edges.Len() }

// edgeIndex returns the position of the edge into to, or -1.
func (n *Node) edgeIndex(to Coord) int {
	for i := 0; i < n.edges.Len(); i++ {
		e, _ := n.edges.Get(i)
		if e.To() == to {
			return i
		}
	}

	return -1
}

// addEdge appends an edge into to. Adding a second edge to the same
// neighbour is a no-op reported as ErrDuplicateEdge; the existing weight is
// never overwritten.
func (n *Node) addEdge(to Coord, weight int64) error {
	if n.edgeIndex(to) >= 0 {
		return fmt.Errorf("%w: %s already a neighbour of %s", ErrDuplicateEdge, to, n.coord)
	}
	n.edges.PushBack(NewEdge(to, weight))

	return nil
}

// removeEdge removes the edge into to. Removing an absent edge is a no-op
// reported as ErrNotNeighbour.
func (n *Node) removeEdge(to Coord) error {
	i := n.edgeIndex(to)
	if i < 0 {
		return fmt.Errorf("%w: %s is not a neighbour of %s", ErrNotNeighbour, to, n.coord)
	}
	_, _ = n.edges.PopAt(i)

	return nil
}

// setEdgeWeight rewrites the weight of the edge into to, if present.
// Used by the Graph to mark transitions into (im)passable cells.
func (n *Node) setEdgeWeight(to Coord, weight int64) {
	if i := n.edgeIndex(to); i >= 0 {
		_ = n.edges.Set(i, NewEdge(to, weight))
	}
}

// String renders the node's coordinate, scratch state and degree, e.g.
// "(1,2,0) g=3 f=7 passable degree=6". Inf renders as "inf".
func (n *Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s g=%s f=%s", n.coord, costString(n.g), costString(n.f))
	if !n.passable {
		b.WriteString(" impassable")
	} else {
		b.WriteString(" passable")
	}
	fmt.Fprintf(&b, " degree=%d", n.edges.Len())

	return b.String()
}

// costString formats a cost, rendering the Inf sentinel as "inf".
func costString(v int64) string {
	if v == Inf {
		return "inf"
	}

	return fmt.Sprintf("%d", v)
}
