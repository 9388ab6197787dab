// Package obstacle blocks regions of a grid using axis-aligned 3D volumes
// held in an R-tree.
//
// What:
//
//   - Box is an inclusive axis-aligned volume between two coordinates.
//   - Index stores boxes in a 3-dimensional R-tree and answers point
//     containment queries.
//   - Apply walks a grid.Graph and marks every cell inside any box
//     impassable, so searches route around the volumes.
//
// Why:
//
//   - Simulations usually describe blocked space as volumes (walls, no-go
//     zones, solid bodies), not cell lists. The R-tree keeps per-cell
//     containment checks cheap when many volumes are loaded.
//
// Complexity:
//
//   - Add: O(log n). Contains: O(log n + k).
//   - Apply: O(X·Y·Z·(log n + k)) plus the grid's SetPassable cost.
//
// Errors:
//
//   - ErrInvalidBox: box with Min > Max on some axis.
package obstacle
