package descent

import (
	"fmt"

	"github.com/katalvlaran/wavepath/costfield"
	"github.com/katalvlaran/wavepath/grid"
)

// walker holds the state of one extraction.
type walker struct {
	g     *grid.Grid
	field *costfield.GoalField
	opts  Options
	res   Result
}

// Extract walks from start towards the goal of field.
//
// Behavior:
//  1. Snap-to-free: if start is a wall, expand FIFO over all 8 neighbors
//     until the first free cell; give up after SnapLimit cells with
//     Status NoFreeCell and ErrNoFreeCell.
//  2. Greedy descent: while the current cost is not 0, record the current
//     cell and move to the neighbor with the lowest cost c, 0 < c < cost.
//     The first neighbor in grid.Neighbors8 order wins ties. Without such a
//     neighbor the walk stops.
//  3. Record the final cell once more.
//
// Complexity: O(W·H·8) worst case for each phase.
func Extract(g *grid.Grid, field *costfield.GoalField, start grid.Point, opts ...Option) (Result, error) {
	if g == nil || field == nil {
		return Result{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if field.Width != g.Width || field.Height != g.Height {
		return Result{}, fmt.Errorf("%w: field %dx%d, grid %dx%d",
			ErrDimensionMismatch, field.Width, field.Height, g.Width, g.Height)
	}
	if !g.Contains(start) {
		return Result{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, start, g.Width, g.Height)
	}
	if o.SnapLimit == 0 {
		o.SnapLimit = g.Size()
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = g.Size()
	}

	w := &walker{g: g, field: field, opts: o}
	from, ok := w.snap(start)
	if !ok {
		w.res.Status = NoFreeCell
		return w.res, fmt.Errorf("%w: start %v after %d cells", ErrNoFreeCell, start, o.SnapLimit)
	}
	w.res.Start = from
	w.res.Snapped = from != start
	w.descend(from)

	return w.res, nil
}

// snap returns p if it is free, otherwise the first free cell found by a
// FIFO expansion around p. Cells are examined at most once, which keeps
// the first-found order of an unbounded re-enqueuing expansion.
func (w *walker) snap(p grid.Point) (grid.Point, bool) {
	if w.g.IsFree(p.X, p.Y) {
		return p, true
	}
	seen := make([]bool, w.g.Size())
	queue := []grid.Point{p}
	seen[w.g.Index(p.X, p.Y)] = true

	for qi := 0; qi < len(queue) && qi < w.opts.SnapLimit; qi++ {
		cur := queue[qi]
		if w.g.IsFree(cur.X, cur.Y) {
			return cur, true
		}
		for _, off := range grid.Neighbors8 {
			next := cur.Add(off[0], off[1])
			if !w.g.Contains(next) {
				continue
			}
			i := w.g.Index(next.X, next.Y)
			if seen[i] {
				continue
			}
			seen[i] = true
			queue = append(queue, next)
		}
	}
	return grid.Point{}, false
}

// descend runs greedy descent from p and fills w.res.
func (w *walker) descend(p grid.Point) {
	f := w.field
	cur := p
	cost := f.At(cur.X, cur.Y)
	status := Stalled

	for steps := 0; f.At(cur.X, cur.Y) != 0; steps++ {
		w.push(cur)
		if steps >= w.opts.MaxSteps {
			break
		}
		next := cur
		for _, off := range grid.Neighbors8 {
			nx, ny := cur.X+off[0], cur.Y+off[1]
			if !f.InBounds(nx, ny) {
				continue
			}
			c := f.At(nx, ny)
			if c > 0 && c < cost {
				cost = c
				next = grid.Point{X: nx, Y: ny}
			}
		}
		if next == cur {
			break
		}
		cur = next
	}
	w.push(cur)

	if cur == f.Goal || cur.Adjacent(f.Goal) {
		status = Reached
	}
	w.res.Status = status
}

func (w *walker) push(p grid.Point) {
	w.res.Xs = append(w.res.Xs, p.X)
	w.res.Ys = append(w.res.Ys, p.Y)
}
