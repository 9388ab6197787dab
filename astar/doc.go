// Package astar implements the A* shortest-path search over a grid.Graph.
//
// What:
//
//   - AStar binds to one Graph and owns the open-set (a minheap of nodes
//     keyed by f-value) and the reconstructed path buffer.
//   - Search finds the cheapest path between two coordinates under the
//     graph's adjacency style; Path returns it start→goal inclusive.
//   - Estimate is the heuristic: L1 distance for Manhattan grids, the
//     diagonal-shortcut distance for Diagonal grids.
//
// Why:
//
//   - Simulations and games that need repeated shortest-path queries over a
//     discretized 3D space, with connectivity re-wired between queries.
//
// Behavior:
//
//   - A session moves Idle → Searching → Done; Reset (run implicitly at the
//     start of every Search) returns it to Idle, clearing per-node scratch
//     state, the open-set and the path buffer, so an AStar instance is
//     reusable across any number of queries.
//   - "No path" is a valid outcome, not an error: Search returns nil and
//     Path stays empty.
//   - Edges with weight 0 mark impassable neighbours and are never taken.
//   - When two shortest paths tie on cost, which one is returned is
//     unspecified (heap tie order is unspecified); assert on cost.
//
// Complexity:
//
//   - O(V log V · d) over the visited region, d = neighbours per node.
//     The open-set membership scan is O(V); see minheap.
//
// Concurrency:
//
//   - Search runs to completion on the calling goroutine and mutably borrows
//     the bound Graph; never run two searches over one Graph concurrently.
//     WithMaxExpansions bounds worst-case runtime instead of cancellation.
//
// Errors:
//
//   - ErrNilGraph: New was handed a nil graph.
//   - ErrBudgetExhausted: Search stopped by WithMaxExpansions.
//   - ErrBadMaxExpansions: negative budget (panics at option time).
//   - grid.ErrCoordOutOfBounds: start or goal outside the grid.
package astar
