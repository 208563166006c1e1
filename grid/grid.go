package grid

import (
	"strconv"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It deep-copies the input so later changes by the caller are not observed.
// Returns ErrEmptyGrid if labels has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(labels [][]int) (*Grid, error) {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(labels), len(labels[0])
	for _, row := range labels {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], labels[y])
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Label returns the raw label at (x,y). The caller must check bounds.
func (g *Grid) Label(x, y int) int {
	return g.cells[y][x]
}

// IsFree reports whether (x,y) is in bounds and labelled Free.
func (g *Grid) IsFree(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Free
}

// IsWall reports whether (x,y) is in bounds and carries a nonzero label.
func (g *Grid) IsWall(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] != Free
}

// Walls returns every wall cell in row-major scan order.
func (g *Grid) Walls() []Point {
	var walls []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != Free {
				walls = append(walls, Point{X: x, Y: y})
			}
		}
	}
	return walls
}

// Complement returns a new Grid with free and wall cells swapped:
// Free cells become WallMarker and every nonzero label becomes Free.
// The receiver is not modified.
func (g *Grid) Complement() *Grid {
	cells := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		cells[y] = make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == Free {
				cells[y][x] = WallMarker
			} // else stays Free
		}
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Labels returns a deep copy of the label array, indexed [y][x].
func (g *Grid) Labels() [][]int {
	out := make([][]int, g.Height)
	for y := range g.cells {
		out[y] = make([]int, g.Width)
		copy(out[y], g.cells[y])
	}
	return out
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Size returns the number of cells, Width*Height.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// String renders the grid one row per line, labels separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}
