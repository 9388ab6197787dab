package obstacle

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/voxpath/voxpath/grid"
)

// ErrInvalidBox indicates Min exceeds Max on at least one axis.
var ErrInvalidBox = errors.New("obstacle: box min exceeds max")

// R-tree branching; 3 dimensions, small fan-out suits obstacle counts in
// the tens-to-thousands range.
const (
	treeDims        = 3
	treeMinBranch   = 2
	treeMaxBranch   = 8
	cellProbeLength = 0.1
)

// Box is an inclusive axis-aligned volume: every cell c with
// Min.X ≤ c.X ≤ Max.X (and likewise for Y, Z) lies inside it.
type Box struct {
	Min, Max grid.Coord
}

// NewBox validates and returns a box. Returns ErrInvalidBox when min > max
// on any axis.
func NewBox(min, max grid.Coord) (Box, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return Box{}, fmt.Errorf("%w: min %s, max %s", ErrInvalidBox, min, max)
	}

	return Box{Min: min, Max: max}, nil
}

// Contains reports whether c lies inside the box.
func (b Box) Contains(c grid.Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// boxEntry adapts Box to the rtreego.Spatial interface.
type boxEntry struct {
	box  Box
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *boxEntry) Bounds() rtreego.Rect {
	return e.rect
}

// boundsOf builds the R-tree rectangle for a box. Each axis spans
// [Min, Max+0.5] so integer cell probes inside the box intersect it and
// probes one cell past Max do not.
func boundsOf(b Box) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(b.Min.X), float64(b.Min.Y), float64(b.Min.Z)},
		[]float64{
			float64(b.Max.X-b.Min.X) + 0.5,
			float64(b.Max.Y-b.Min.Y) + 0.5,
			float64(b.Max.Z-b.Min.Z) + 0.5,
		},
	)
}

// Index holds obstacle volumes in a 3D R-tree.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex returns an empty obstacle index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(treeDims, treeMinBranch, treeMaxBranch)}
}

// Len returns the number of stored boxes.
func (ix *Index) Len() int { return ix.size }

// Add stores a box in the index.
func (ix *Index) Add(b Box) error {
	rect, err := boundsOf(b)
	if err != nil {
		return fmt.Errorf("obstacle: box %s-%s: %w", b.Min, b.Max, err)
	}
	ix.tree.Insert(&boxEntry{box: b, rect: rect})
	ix.size++

	return nil
}

// Contains reports whether c lies inside any stored box.
func (ix *Index) Contains(c grid.Coord) bool {
	probe, err := rtreego.NewRect(
		rtreego.Point{float64(c.X), float64(c.Y), float64(c.Z)},
		[]float64{cellProbeLength, cellProbeLength, cellProbeLength},
	)
	if err != nil {
		return false
	}
	for _, hit := range ix.tree.SearchIntersect(probe) {
		if hit.(*boxEntry).box.Contains(c) {
			return true
		}
	}

	return false
}

// Apply marks every cell of g inside any stored box impassable and returns
// how many cells were blocked.
func (ix *Index) Apply(g *grid.Graph) (int, error) {
	xs, ys, zs := g.Size()
	blocked := 0
	for x := 0; x < xs; x++ {
		for y := 0; y < ys; y++ {
			for z := 0; z < zs; z++ {
				c := grid.Coord{X: x, Y: y, Z: z}
				if !ix.Contains(c) {
					continue
				}
				if err := g.SetPassable(c, false); err != nil {
					return blocked, err
				}
				blocked++
			}
		}
	}

	return blocked, nil
}
