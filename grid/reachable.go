package grid

// Reachable flood-fills the 8-connected free region containing p.
// The result is indexed row-major (see Index); it is all false when p
// is out of bounds or a wall.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for the visited flags and queue.
func (g *Grid) Reachable(p Point) []bool {
	seen := make([]bool, g.Size())
	if !g.IsFree(p.X, p.Y) {
		return seen
	}
	i0 := g.Index(p.X, p.Y)
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, d := range Neighbors8 {
			vx, vy := ux+d[0], uy+d[1]
			if !g.IsFree(vx, vy) {
				continue
			}
			vi := g.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return seen
}

// Regions partitions all free cells into 8-connected regions.
// Each region is a slice of row-major indices in discovery order.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.Size())
	var regions [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != Free {
				continue
			}
			i0 := g.Index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range Neighbors8 {
					vx, vy := ux+d[0], uy+d[1]
					if !g.IsFree(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}
