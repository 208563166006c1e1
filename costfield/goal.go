package costfield

import (
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
)

// BuildGoal computes the cost-to-goal field of g under wall penalties w.
//
// Behavior:
//  1. Validate inputs: goal in bounds and free, w sized like g.
//  2. Every cell starts Unvisited; the goal starts at 0.
//  3. FIFO wavefront from the goal: an in-bounds, free, Unvisited neighbor
//     gets current + 1 + w.Penalty[neighbor] and is enqueued. A cell is
//     never revisited once set.
//
// Visited-once FIFO expansion makes the result an approximation of the
// cheapest weighted route, not an exact one.
//
// Complexity: O(W·H·8) time, O(W·H) memory.
func BuildGoal(g *grid.Grid, w *WallField, goal grid.Point) (*GoalField, error) {
	if g == nil || w == nil {
		return nil, ErrNilGrid
	}
	if w.Width != g.Width || w.Height != g.Height {
		return nil, fmt.Errorf("%w: wall field %dx%d, grid %dx%d",
			ErrDimensionMismatch, w.Width, w.Height, g.Width, g.Height)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, g.Width, g.Height)
	}
	if !g.IsFree(goal.X, goal.Y) {
		return nil, fmt.Errorf("%w: goal %v has label %d", ErrGoalNotFree, goal, g.Label(goal.X, goal.Y))
	}

	n := g.Size()
	cost := make([]float64, n)
	for i := range cost {
		cost[i] = Unvisited
	}
	g0 := g.Index(goal.X, goal.Y)
	cost[g0] = 0

	queue := make([]int, 1, n)
	queue[0] = g0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := g.Coordinate(u)
		c := cost[u]
		for _, off := range grid.Neighbors8 {
			vx, vy := ux+off[0], uy+off[1]
			if !g.IsFree(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			if cost[v] != Unvisited {
				continue
			}
			cost[v] = c + 1 + w.Penalty[v]
			queue = append(queue, v)
		}
	}

	return &GoalField{
		Width:   g.Width,
		Height:  g.Height,
		Goal:    goal,
		Cost:    cost,
		Visited: len(queue),
	}, nil
}
