// Package grid defines the Coord, Style and Edge value types plus the
// sentinel errors shared by the grid package.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimension indicates an axis extent smaller than 1.
	ErrBadDimension = errors.New("grid: axis extent must be at least 1")

	// ErrDimensionTooLarge indicates an axis extent above MaxExtent.
	ErrDimensionTooLarge = errors.New("grid: axis extent exceeds MaxExtent")

	// ErrBadStyle indicates an unknown adjacency style.
	ErrBadStyle = errors.New("grid: unknown adjacency style")

	// ErrCoordOutOfBounds indicates a coordinate outside the grid bounds.
	ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("grid: edge weight must be non-negative")

	// ErrDuplicateEdge indicates the edge already exists; the add is a no-op
	// and the existing weight is preserved.
	ErrDuplicateEdge = errors.New("grid: edge already exists")

	// ErrNotNeighbour indicates no such edge exists; the removal is a no-op.
	ErrNotNeighbour = errors.New("grid: not a neighbour")
)

const (
	// MaxExtent bounds each axis of a Graph, keeping coordinates within a
	// byte. The grid itself never depends on the value beyond this
	// construction-time check.
	MaxExtent = 256

	// DefaultEdgeWeight is the cost assigned to every edge built during
	// Graph construction and restored when a cell becomes passable again.
	DefaultEdgeWeight int64 = 1

	// Inf is the "unknown / unreachable" sentinel for node g and f values.
	Inf int64 = math.MaxInt64
)

// Style selects which coordinate offsets count as neighbours.
type Style int

const (
	// Manhattan connects the ≤6 axis-aligned cells offset by ±1 along
	// exactly one axis.
	Manhattan Style = iota

	// Diagonal connects all ≤26 cells of the 3×3×3 block centred on a cell,
	// excluding the cell itself.
	Diagonal
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Manhattan:
		return "Manhattan"
	case Diagonal:
		return "Diagonal"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// valid reports whether s is a known style.
func (s Style) valid() bool {
	return s == Manhattan || s == Diagonal
}

// Coord identifies a cell of the grid. Two nodes are the same node iff their
// coordinates are equal.
type Coord struct {
	X, Y, Z int
}

// String formats the coordinate as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Edge is an immutable directed transition into the cell at To, costing
// Weight. Edges are owned by the node the transition starts from; weight 0
// marks the transition as unusable (To is impassable).
type Edge struct {
	to     Coord
	weight int64
}

// NewEdge constructs an edge into the neighbour at to, costing weight.
func NewEdge(to Coord, weight int64) Edge {
	return Edge{to: to, weight: weight}
}

// To returns the coordinate of the neighbour this edge leads into.
func (e Edge) To() Coord { return e.to }

// Weight returns the cost of entering To through this edge.
func (e Edge) Weight() int64 { return e.weight }

// Offset tables for the two adjacency styles. manhattanOffsets is the subset
// of diagonalOffsets with exactly one non-zero axis.
var (
	manhattanOffsets = [][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	diagonalOffsets = buildDiagonalOffsets()
)

// buildDiagonalOffsets enumerates the 26 offsets of the 3×3×3 block minus
// the centre.
func buildDiagonalOffsets() [][3]int {
	offsets := make([][3]int, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offsets = append(offsets, [3]int{dx, dy, dz})
			}
		}
	}

	return offsets
}

// offsetsFor returns the neighbour offset table for a style.
func offsetsFor(s Style) [][3]int {
	if s == Diagonal {
		return diagonalOffsets
	}

	return manhattanOffsets
}
