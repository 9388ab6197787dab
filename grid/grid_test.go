package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpath/voxpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies dimension and style validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
		style   grid.Style
		err     error
	}{
		{"ZeroX", 0, 3, 3, grid.Manhattan, grid.ErrBadDimension},
		{"NegativeY", 3, -1, 3, grid.Manhattan, grid.ErrBadDimension},
		{"ZeroZ", 3, 3, 0, grid.Diagonal, grid.ErrBadDimension},
		{"TooLarge", grid.MaxExtent + 1, 1, 1, grid.Manhattan, grid.ErrDimensionTooLarge},
		{"BadStyle", 3, 3, 3, grid.Style(42), grid.ErrBadStyle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.x, tc.y, tc.z, tc.style)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_EveryCoordHasOneNode verifies the arena invariant on a small grid.
func TestNew_EveryCoordHasOneNode(t *testing.T) {
	g, err := grid.New(2, 3, 4, grid.Manhattan)
	require.NoError(t, err)

	seen := make(map[grid.Coord]bool)
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				n, err := g.NodeAt(x, y, z)
				require.NoError(t, err)
				require.NotNil(t, n)
				assert.Equal(t, grid.Coord{X: x, Y: y, Z: z}, n.Coord())
				assert.False(t, seen[n.Coord()], "coordinate mapped twice")
				seen[n.Coord()] = true
			}
		}
	}
	assert.Len(t, seen, 24)
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestAdjacency_Manhattan checks degree of the centre and a corner of a
// 3×3×3 Manhattan grid: 6 and 3 neighbours respectively.
func TestAdjacency_Manhattan(t *testing.T) {
	g, err := grid.New(3, 3, 3, grid.Manhattan)
	require.NoError(t, err)

	centre, err := g.NodeAt(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, centre.Degree(), "centre of a Manhattan grid")

	corner, err := g.NodeAt(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, corner.Degree(), "corner of a Manhattan grid")
}

// TestAdjacency_Diagonal checks degree of the centre and a corner of a
// 3×3×3 Diagonal grid: 26 and 7 neighbours respectively.
func TestAdjacency_Diagonal(t *testing.T) {
	g, err := grid.New(3, 3, 3, grid.Diagonal)
	require.NoError(t, err)

	centre, err := g.NodeAt(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 26, centre.Degree(), "centre of a Diagonal grid")

	corner, err := g.NodeAt(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, corner.Degree(), "corner of a Diagonal grid")
}

// TestAdjacency_EdgesStayInBounds verifies no edge leaves the grid.
func TestAdjacency_EdgesStayInBounds(t *testing.T) {
	g, err := grid.New(2, 2, 2, grid.Diagonal)
	require.NoError(t, err)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				n, _ := g.NodeAt(x, y, z)
				for _, e := range n.Edges() {
					to := e.To()
					assert.True(t, g.InBounds(to.X, to.Y, to.Z),
						"edge %s→%s leaves the grid", n.Coord(), to)
					assert.Equal(t, grid.DefaultEdgeWeight, e.Weight())
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Lookup
//----------------------------------------------------------------------------//

// TestNodeAt_OutOfBounds verifies bounds-checked lookup never truncates.
func TestNodeAt_OutOfBounds(t *testing.T) {
	g, err := grid.New(3, 3, 3, grid.Manhattan)
	require.NoError(t, err)

	for _, c := range []grid.Coord{
		{X: -1, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 0, Y: 3, Z: 0},
		{X: 0, Y: 0, Z: -2},
	} {
		_, err := g.At(c)
		assert.ErrorIs(t, err, grid.ErrCoordOutOfBounds, "coord %s", c)
	}
}

//----------------------------------------------------------------------------//
// Edge mutation
//----------------------------------------------------------------------------//

// TestAddEdge_Duplicate verifies the duplicate-edge policy: the second add is
// a reported no-op and the original weight survives.
func TestAddEdge_Duplicate(t *testing.T) {
	g, err := grid.New(3, 1, 1, grid.Manhattan)
	require.NoError(t, err)

	a := grid.Coord{X: 0, Y: 0, Z: 0}
	c := grid.Coord{X: 2, Y: 0, Z: 0}

	// (0,0,0) and (2,0,0) are not adjacent, so this edge is new.
	require.NoError(t, g.AddEdge(a, c, 5))
	assert.ErrorIs(t, g.AddEdge(a, c, 9), grid.ErrDuplicateEdge)

	from, _ := g.At(a)
	var found int
	for _, e := range from.Edges() {
		if e.To() == c {
			found++
			assert.Equal(t, int64(5), e.Weight(), "re-adding must not overwrite")
		}
	}
	assert.Equal(t, 1, found, "exactly one edge to the same neighbour")
}

// TestAddEdge_Validation verifies endpoint and weight checks.
func TestAddEdge_Validation(t *testing.T) {
	g, err := grid.New(2, 2, 2, grid.Manhattan)
	require.NoError(t, err)

	in := grid.Coord{X: 0, Y: 0, Z: 0}
	out := grid.Coord{X: 5, Y: 0, Z: 0}
	assert.ErrorIs(t, g.AddEdge(out, in, 1), grid.ErrCoordOutOfBounds)
	assert.ErrorIs(t, g.AddEdge(in, out, 1), grid.ErrCoordOutOfBounds)
	assert.ErrorIs(t, g.AddEdge(in, grid.Coord{X: 1, Y: 1, Z: 1}, -3), grid.ErrBadWeight)
}

// TestRemoveEdge verifies one-way removal and the not-a-neighbour report.
func TestRemoveEdge(t *testing.T) {
	g, err := grid.New(2, 1, 1, grid.Manhattan)
	require.NoError(t, err)

	a := grid.Coord{X: 0, Y: 0, Z: 0}
	b := grid.Coord{X: 1, Y: 0, Z: 0}

	require.NoError(t, g.RemoveEdge(a, b))

	from, _ := g.At(a)
	assert.Equal(t, 0, from.Degree(), "a→b removed")

	// Removal is one-way: b→a survives.
	back, _ := g.At(b)
	assert.Equal(t, 1, back.Degree(), "b→a untouched")

	// Removing again is a reported no-op.
	assert.ErrorIs(t, g.RemoveEdge(a, b), grid.ErrNotNeighbour)
}

//----------------------------------------------------------------------------//
// Passability
//----------------------------------------------------------------------------//

// TestSetPassable verifies edges into a blocked cell drop to weight 0 and
// recover when the cell is unblocked.
func TestSetPassable(t *testing.T) {
	g, err := grid.New(3, 1, 1, grid.Manhattan)
	require.NoError(t, err)

	mid := grid.Coord{X: 1, Y: 0, Z: 0}
	require.NoError(t, g.SetPassable(mid, false))

	blocked, _ := g.At(mid)
	assert.False(t, blocked.Passable())

	left, _ := g.NodeAt(0, 0, 0)
	for _, e := range left.Edges() {
		if e.To() == mid {
			assert.Equal(t, int64(0), e.Weight(), "edge into blocked cell")
		}
	}
	// Outgoing edges of the blocked cell keep their weight.
	for _, e := range blocked.Edges() {
		assert.Equal(t, grid.DefaultEdgeWeight, e.Weight())
	}

	require.NoError(t, g.SetPassable(mid, true))
	for _, e := range left.Edges() {
		if e.To() == mid {
			assert.Equal(t, grid.DefaultEdgeWeight, e.Weight(), "weight restored")
		}
	}
}

//----------------------------------------------------------------------------//
// Reset
//----------------------------------------------------------------------------//

// TestReset verifies scratch state clears while topology survives, and that
// Reset is idempotent.
func TestReset(t *testing.T) {
	g, err := grid.New(2, 2, 2, grid.Manhattan)
	require.NoError(t, err)

	n, _ := g.NodeAt(1, 1, 1)
	n.SetG(4)
	n.SetF(9)
	n.SetCameFrom(grid.Coord{X: 0, Y: 1, Z: 1})
	degree := n.Degree()

	for i := 0; i < 3; i++ {
		g.Reset()
		assert.Equal(t, grid.Inf, n.G())
		assert.Equal(t, grid.Inf, n.F())
		_, ok := n.CameFrom()
		assert.False(t, ok)
		assert.Equal(t, degree, n.Degree(), "edges untouched by reset")
	}
}
