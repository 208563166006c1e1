// Package solver plans a path across an occupancy grid.
//
// A Solver owns an immutable grid.Grid. Each call to Solve or Plan builds a
// fresh wall penalty field and a fresh cost-to-goal field, then extracts the
// path by greedy descent; nothing is cached between calls, so different
// goals never see each other's fields.
//
// SolveInverted and PlanInverted plan on the complement of the grid, so the
// labelled cells become the corridor: useful for tracking a drawn line
// instead of avoiding it.
//
// Coordinates are (x, y) with x the column and y the row, while the label
// array passed to New is indexed [y][x].
//
// Logging goes through a logrus.FieldLogger supplied with WithLogger; by
// default output is discarded.
package solver
