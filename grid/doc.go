// Package grid treats a 2D array of integer cell labels as an occupancy map.
//
// What:
//
//   - Grid wraps a rectangular [][]int, stored row-major as labels[y][x].
//   - Label 0 is free space; any nonzero label is a wall.
//   - Cells are addressed by Point{X, Y}: X is the column, Y is the row.
//   - Neighbors8 fixes the 8-connected offset order used by every expansion.
//   - Reachable flood-fills the free region containing a cell.
//   - Complement swaps free and wall cells for "follow the line" planning.
//
// Complexity:
//
//   - New, Complement, Labels: O(W×H) time and memory.
//   - Reachable:               O(W×H×8), Memory: O(W×H).
//   - InBounds, IsFree, Label: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
