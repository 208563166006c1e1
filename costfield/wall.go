package costfield

import (
	"github.com/katalvlaran/wavepath/grid"
)

// BuildWall computes the wall penalty field of g.
//
// Behavior:
//  1. Seed a FIFO queue with every wall cell in row-major order, distance 0.
//  2. Pop a cell; each in-bounds free neighbor still at distance 0 gets
//     current+1 and is enqueued. Out-of-bounds neighbors are skipped.
//  3. After the queue drains, Penalty = (MaxRaw − Raw)².
//
// A grid without walls, or a free pocket no wall can reach, keeps raw
// distance 0, so such cells carry the full MaxRaw² penalty.
//
// Complexity: O(W·H·8) time, O(W·H) memory.
func BuildWall(g *grid.Grid) *WallField {
	if g == nil {
		return nil
	}
	n := g.Size()
	raw := make([]int, n)

	walls := g.Walls()
	queue := make([]int, 0, n)
	for _, p := range walls {
		queue = append(queue, g.Index(p.X, p.Y))
	}

	maxRaw := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := g.Coordinate(u)
		d := raw[u]
		for _, off := range grid.Neighbors8 {
			vx, vy := ux+off[0], uy+off[1]
			if !g.IsFree(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			if raw[v] != 0 {
				continue
			}
			raw[v] = d + 1
			if d+1 > maxRaw {
				maxRaw = d + 1
			}
			queue = append(queue, v)
		}
	}

	penalty := make([]float64, n)
	for i, d := range raw {
		inv := float64(maxRaw - d)
		penalty[i] = inv * inv
	}

	return &WallField{
		Width:   g.Width,
		Height:  g.Height,
		MaxRaw:  maxRaw,
		Raw:     raw,
		Penalty: penalty,
	}
}
