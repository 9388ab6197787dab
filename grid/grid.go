// Package grid implements the 3D node arena and its adjacency construction.
package grid

import (
	"fmt"
	"strings"
)

// Graph owns the complete 3D arena of Nodes. Every valid coordinate maps to
// exactly one Node, and edges only ever reference coordinates inside the
// same graph. Not safe for concurrent mutation; a graph is mutably borrowed
// by at most one search at a time.
type Graph struct {
	nodes []*Node // row-major arena: index = (x*ySize + y)*zSize + z
	xSize int
	ySize int
	zSize int
	style Style
}

// New allocates an xSize×ySize×zSize grid of passable nodes and wires their
// edges according to style, with every edge costing DefaultEdgeWeight.
//
// Returns ErrBadDimension if any extent is < 1, ErrDimensionTooLarge if any
// extent exceeds MaxExtent, and ErrBadStyle for an unknown style.
// Complexity: O(X·Y·Z·d) where d is the style's neighbour count.
func New(xSize, ySize, zSize int, style Style) (*Graph, error) {
	for _, size := range []int{xSize, ySize, zSize} {
		if size < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrBadDimension, size)
		}
		if size > MaxExtent {
			return nil, fmt.Errorf("%w: got %d, max %d", ErrDimensionTooLarge, size, MaxExtent)
		}
	}
	if !style.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadStyle, int(style))
	}

	g := &Graph{
		nodes: make([]*Node, xSize*ySize*zSize),
		xSize: xSize,
		ySize: ySize,
		zSize: zSize,
		style: style,
	}
	for x := 0; x < xSize; x++ {
		for y := 0; y < ySize; y++ {
			for z := 0; z < zSize; z++ {
				g.nodes[g.index(x, y, z)] = NewNode(x, y, z, true)
			}
		}
	}
	g.buildEdges()

	return g, nil
}

// buildEdges wires every node to its in-bounds neighbours under the graph's
// style. Construction order guarantees no duplicates.
func (g *Graph) buildEdges() {
	offsets := offsetsFor(g.style)
	for _, n := range g.nodes {
		c := n.Coord()
		for _, d := range offsets {
			nx, ny, nz := c.X+d[0], c.Y+d[1], c.Z+d[2]
			if !g.InBounds(nx, ny, nz) {
				continue
			}
			_ = n.addEdge(Coord{X: nx, Y: ny, Z: nz}, DefaultEdgeWeight)
		}
	}
}

// index maps (x,y,z) to the arena position.
func (g *Graph) index(x, y, z int) int {
	return (x*g.ySize+y)*g.zSize + z
}

// Size returns the axis extents.
func (g *Graph) Size() (xSize, ySize, zSize int) {
	return g.xSize, g.ySize, g.zSize
}

// Style returns the adjacency style the graph was built with.
func (g *Graph) Style() Style { return g.style }

// InBounds reports whether (x,y,z) lies within the grid. O(1).
func (g *Graph) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.xSize &&
		y >= 0 && y < g.ySize &&
		z >= 0 && z < g.zSize
}

// NodeAt returns the node at (x,y,z).
// Returns ErrCoordOutOfBounds for coordinates outside the grid; never
// truncates or wraps. O(1).
func (g *Graph) NodeAt(x, y, z int) (*Node, error) {
	if !g.InBounds(x, y, z) {
		return nil, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d grid",
			ErrCoordOutOfBounds, x, y, z, g.xSize, g.ySize, g.zSize)
	}

	return g.nodes[g.index(x, y, z)], nil
}

// At is NodeAt for a Coord.
func (g *Graph) At(c Coord) (*Node, error) {
	return g.NodeAt(c.X, c.Y, c.Z)
}

// Reset clears the search scratch state of every node. Called at the start
// of every search so stale g/f/came-from values from a prior run never leak
// into the next. Idempotent. O(X·Y·Z).
func (g *Graph) Reset() {
	for _, n := range g.nodes {
		n.Reset()
	}
}

// AddEdge wires a one-way transition from→to with the given weight, letting
// callers re-route connectivity after construction.
//
// Adding an edge that already exists is a no-op reported as ErrDuplicateEdge;
// the existing weight is preserved. Returns ErrCoordOutOfBounds if either
// endpoint is outside the grid and ErrBadWeight for a negative weight.
func (g *Graph) AddEdge(from, to Coord, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	src, err := g.At(from)
	if err != nil {
		return err
	}
	if _, err = g.At(to); err != nil {
		return err
	}

	return src.addEdge(to, weight)
}

// RemoveEdge removes the one-way transition from→to, e.g. to simulate a
// blocked passage. Removing an absent edge is a no-op reported as
// ErrNotNeighbour.
func (g *Graph) RemoveEdge(from, to Coord) error {
	src, err := g.At(from)
	if err != nil {
		return err
	}
	if _, err = g.At(to); err != nil {
		return err
	}

	return src.removeEdge(to)
}

// SetPassable marks the cell at c as passable or blocked. Every edge leading
// into a blocked cell has its weight rewritten to 0, which the search treats
// as unusable; restoring passability rewrites them to DefaultEdgeWeight.
// O(X·Y·Z·d).
func (g *Graph) SetPassable(c Coord, passable bool) error {
	n, err := g.At(c)
	if err != nil {
		return err
	}
	n.passable = passable

	weight := int64(0)
	if passable {
		weight = DefaultEdgeWeight
	}
	for _, other := range g.nodes {
		if other == n {
			continue
		}
		other.setEdgeWeight(c, weight)
	}

	return nil
}

// String renders every node, one per line, z varying fastest. Debug aid for
// small grids.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grid %dx%dx%d style=%s\n", g.xSize, g.ySize, g.zSize, g.style)
	for _, n := range g.nodes {
		b.WriteString("  ")
		b.WriteString(n.String())
		b.WriteByte('\n')
	}

	return b.String()
}
