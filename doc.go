// Package wavepath plans paths across 2D occupancy grids with wavefront
// cost fields and greedy descent.
//
// Pipeline:
//
//	grid.Grid ──► costfield.BuildWall ──► costfield.BuildGoal ──► descent.Extract
//	 labels        wall penalty             cost-to-goal              path
//
// Subpackages:
//
//	grid/       immutable occupancy grid, 8-neighbor order, complement, regions
//	costfield/  wall penalty and cost-to-goal wavefronts
//	descent/    snap-to-free and greedy descent with an explicit Status
//	solver/     orchestration, options and logrus logging
//	pid/        companion PID controller for following the planned path
//
// Quick example:
//
//	sv, _ := solver.New(maze)                           // maze[y][x], 0 = free
//	xs, ys, err := sv.Solve(grid.Pt(1, 1), grid.Pt(5, 6))
package wavepath
