// Package costfield builds the two scalar fields a grid plan descends:
// a wall-proximity penalty and a cumulative cost-to-goal.
//
// BuildWall runs a multi-source wavefront from every wall cell and turns the
// resulting hop distance d into the penalty (max(d) − d)², so cells hugging a
// wall are expensive and open space is cheap.
//
// BuildGoal runs a single-source wavefront from the goal. Each step into a
// free neighbor costs 1 plus that neighbor's wall penalty, and a cell's cost
// is final the moment it is first reached. Because penalties differ between
// cells, FIFO order does not guarantee the cheapest weighted route: the field
// approximates it.
//
// Complexity:
//
//   - BuildWall: O(W×H×8) time, O(W×H) memory.
//   - BuildGoal: O(W×H×8) time, O(W×H) memory.
//
// Errors:
//
//   - ErrNilGrid:           nil grid or wall field.
//   - ErrOutOfBounds:       goal lies outside the grid.
//   - ErrGoalNotFree:       goal lies on a wall cell.
//   - ErrDimensionMismatch: wall field built for a different grid size.
package costfield
