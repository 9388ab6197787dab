// Package grid models a bounded three-dimensional weighted grid as a graph
// of nodes joined by directed, weighted edges.
//
// What:
//
//   - Graph owns a fixed-size arena of Nodes, one per integer coordinate.
//   - Edges are built at construction time according to a Style:
//     Manhattan (≤6 axis-aligned neighbours) or Diagonal (≤26 neighbours,
//     the full 3×3×3 block around a cell).
//   - Per-node search scratch state (g, f, came-from) lives on the Node and
//     is cleared by Reset before every search.
//   - Connectivity can be re-wired after construction with AddEdge and
//     RemoveEdge, and cells can be blocked with SetPassable.
//
// Why:
//
//   - Simulations and games that discretize space into voxels and need
//     shortest-path queries over it (see the astar package).
//
// Design:
//
//   - Edges are outgoing: node.Edges() enumerates the transitions usable to
//     move from that node into a neighbour, and Edge.Weight is the cost of
//     entering Edge.To. A→B existing implies nothing about B→A.
//   - Edges and came-from links carry coordinates, not node pointers, and are
//     resolved through the owning Graph. Nodes live and die with the Graph.
//   - Edges into an impassable node carry weight 0, which the search treats
//     as unusable.
//
// Complexity:
//
//   - New: O(X·Y·Z·d) where d is the neighbour count of the Style.
//   - NodeAt/At/InBounds: O(1).
//   - Reset: O(X·Y·Z).
//   - AddEdge/RemoveEdge: O(d) scan of one node's edge list.
//
// Errors:
//
//   - ErrBadDimension: an axis extent is smaller than 1.
//   - ErrDimensionTooLarge: an axis extent exceeds MaxExtent.
//   - ErrBadStyle: unknown adjacency style.
//   - ErrCoordOutOfBounds: coordinate outside the grid.
//   - ErrBadWeight: negative edge weight.
//   - ErrDuplicateEdge: edge to that neighbour already exists (no-op).
//   - ErrNotNeighbour: no edge to that neighbour exists (no-op).
package grid
