package costfield

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/wavepath/grid"
)

// Sentinel errors for field construction.
var (
	// ErrNilGrid is returned when a nil grid or field is supplied.
	ErrNilGrid = errors.New("costfield: grid or field is nil")
	// ErrOutOfBounds is returned when the goal lies outside the grid.
	ErrOutOfBounds = errors.New("costfield: point out of bounds")
	// ErrGoalNotFree is returned when the goal lies on a wall cell.
	ErrGoalNotFree = errors.New("costfield: goal not on free cell")
	// ErrDimensionMismatch is returned when a wall field does not match the grid.
	ErrDimensionMismatch = errors.New("costfield: field dimensions do not match grid")
)

// Unvisited marks a goal-field cell the wavefront never reached.
const Unvisited = -1.0

// WallField holds the wall-distance wavefront and its derived penalty.
// Raw[i] is the 8-connected hop count from cell i to the nearest wall
// (0 on walls, and on free cells no wall can reach). Penalty[i] is
// (MaxRaw − Raw[i])². Both slices are row-major.
type WallField struct {
	Width, Height int
	MaxRaw        int
	Raw           []int
	Penalty       []float64
}

// RawAt returns the hop distance to the nearest wall at (x,y).
func (w *WallField) RawAt(x, y int) int {
	return w.Raw[y*w.Width+x]
}

// At returns the wall penalty at (x,y).
func (w *WallField) At(x, y int) float64 {
	return w.Penalty[y*w.Width+x]
}

// Rows returns the penalty as a fresh [y][x] array.
func (w *WallField) Rows() [][]float64 {
	return rows(w.Penalty, w.Width, w.Height)
}

// String renders the penalty field one row per line.
func (w *WallField) String() string {
	return render(w.Penalty, w.Width)
}

// GoalField holds the cost-to-goal of every cell. Cells the wavefront
// never reached, including every wall, hold Unvisited.
type GoalField struct {
	Width, Height int
	Goal          grid.Point
	Cost          []float64
	Visited       int
}

// At returns the cost-to-goal at (x,y).
func (f *GoalField) At(x, y int) float64 {
	return f.Cost[y*f.Width+x]
}

// InBounds reports whether (x,y) lies inside the field.
func (f *GoalField) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Reached reports whether the wavefront assigned (x,y) a cost.
func (f *GoalField) Reached(x, y int) bool {
	return f.InBounds(x, y) && f.At(x, y) != Unvisited
}

// Rows returns the costs as a fresh [y][x] array.
func (f *GoalField) Rows() [][]float64 {
	return rows(f.Cost, f.Width, f.Height)
}

// String renders the cost field one row per line.
func (f *GoalField) String() string {
	return render(f.Cost, f.Width)
}

func rows(flat []float64, w, h int) [][]float64 {
	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		copy(out[y], flat[y*w:(y+1)*w])
	}
	return out
}

func render(flat []float64, w int) string {
	var sb strings.Builder
	for i, v := range flat {
		switch {
		case i == 0:
		case i%w == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}
