package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxpath/voxpath/astar"
	"github.com/voxpath/voxpath/grid"
)

// TestEstimate_Manhattan verifies the L1 formula on hand-picked pairs.
func TestEstimate_Manhattan(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Coord
		want int64
	}{
		{"Same", grid.Coord{X: 1, Y: 1, Z: 1}, grid.Coord{X: 1, Y: 1, Z: 1}, 0},
		{"OneAxis", grid.Coord{}, grid.Coord{X: 4}, 4},
		{"AllAxes", grid.Coord{}, grid.Coord{X: 2, Y: 2, Z: 2}, 6},
		{"NegativeDeltas", grid.Coord{X: 5, Y: 3, Z: 2}, grid.Coord{X: 1, Y: 4, Z: 0}, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, astar.Estimate(tc.a, tc.b, grid.Manhattan))
			// Symmetric by construction.
			assert.Equal(t, tc.want, astar.Estimate(tc.b, tc.a, grid.Manhattan))
		})
	}
}

// TestEstimate_Diagonal verifies the diagonal-shortcut formula
// (dx+dy+dz) − 2·min on hand-picked pairs.
func TestEstimate_Diagonal(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Coord
		want int64
	}{
		{"Same", grid.Coord{}, grid.Coord{}, 0},
		{"PureDiagonal", grid.Coord{}, grid.Coord{X: 2, Y: 2, Z: 2}, 2},
		{"MixedAxes", grid.Coord{}, grid.Coord{X: 3, Y: 1, Z: 0}, 4},
		{"TwoAxes", grid.Coord{}, grid.Coord{X: 2, Y: 2, Z: 0}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, astar.Estimate(tc.a, tc.b, grid.Diagonal))
		})
	}
}

// TestEstimate_DiagonalNeverExceedsManhattan sweeps coordinate pairs and
// checks the Diagonal estimate is bounded by the Manhattan one, part of its
// admissibility argument.
func TestEstimate_DiagonalNeverExceedsManhattan(t *testing.T) {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				a := grid.Coord{}
				b := grid.Coord{X: x, Y: y, Z: z}
				d := astar.Estimate(a, b, grid.Diagonal)
				m := astar.Estimate(a, b, grid.Manhattan)
				assert.LessOrEqual(t, d, m, "pair %s→%s", a, b)
				assert.GreaterOrEqual(t, d, int64(0))
			}
		}
	}
}

// TestEstimate_ManhattanExactOnUnitGrid checks the Manhattan estimate equals
// the true cost found by a full search on a unit-weight Manhattan grid,
// which makes it trivially admissible there.
func TestEstimate_ManhattanExactOnUnitGrid(t *testing.T) {
	g, err := grid.New(3, 3, 3, grid.Manhattan)
	assert.NoError(t, err)
	as, err := astar.New(g)
	assert.NoError(t, err)

	start := grid.Coord{}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				goal := grid.Coord{X: x, Y: y, Z: z}
				assert.NoError(t, as.Search(start, goal))
				path := as.Path()
				assert.NotEmpty(t, path)
				trueCost := path[len(path)-1].G()
				assert.Equal(t, trueCost, astar.Estimate(start, goal, grid.Manhattan),
					"estimate for %s→%s", start, goal)
			}
		}
	}
}
