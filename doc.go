// Package voxpath is an embeddable A* pathfinding engine for bounded,
// weighted 3D grids — the kind of discretized space simulations and games
// route units through.
//
// What you get:
//
//   - grid/     — the 3D graph model: a fixed arena of nodes wired by
//     directed, weighted edges under a Manhattan (≤6 neighbours) or
//     Diagonal (≤26 neighbours) adjacency style, with per-cell
//     passability and post-construction re-wiring.
//   - astar/    — the search itself: reusable sessions, the two grid
//     heuristics, path reconstruction, optional expansion budget.
//   - minheap/  — the generic binary min-heap used as the A* open-set.
//   - seq/      — the slice-backed ordered sequence backing the heap and
//     the path buffer.
//   - obstacle/ — axis-aligned blocked volumes in an R-tree, applied to a
//     grid to carve no-go regions.
//
// Quick sketch:
//
//	g, _ := grid.New(3, 3, 3, grid.Manhattan)
//	as, _ := astar.New(g)
//	_ = as.Search(grid.Coord{}, grid.Coord{X: 2, Y: 2, Z: 2})
//	for _, n := range as.Path() {
//	    fmt.Println(n.Coord())
//	}
//
// Searches are synchronous and single-threaded: a Graph is mutably borrowed
// by one search at a time. "No path" is an empty Path, never an error.
//
// See examples/ for a runnable terrain demo.
package voxpath
