package descent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavepath/costfield"
	"github.com/katalvlaran/wavepath/descent"
	"github.com/katalvlaran/wavepath/grid"
)

// sampleMaze is the 8×7 regression maze (1 = wall).
var sampleMaze = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// fields builds the grid and its goal field for goal.
func fields(t *testing.T, labels [][]int, goal grid.Point) (*grid.Grid, *costfield.GoalField) {
	t.Helper()
	g, err := grid.New(labels)
	require.NoError(t, err)
	f, err := costfield.BuildGoal(g, costfield.BuildWall(g), goal)
	require.NoError(t, err)
	return g, f
}

func TestExtract_SampleMaze(t *testing.T) {
	g, f := fields(t, sampleMaze, grid.Pt(5, 6))

	res, err := descent.Extract(g, f, grid.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 3, 4, 4}, res.Xs)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 5}, res.Ys)
	assert.Equal(t, descent.Reached, res.Status)
	assert.Equal(t, grid.Pt(1, 1), res.Start)
	assert.False(t, res.Snapped)

	end, ok := res.End()
	require.True(t, ok)
	assert.True(t, end.Adjacent(grid.Pt(5, 6)))
}

// TestExtract_CostsDecrease: consecutive distinct cells strictly lower the cost.
func TestExtract_CostsDecrease(t *testing.T) {
	g, f := fields(t, sampleMaze, grid.Pt(7, 0))
	res, err := descent.Extract(g, f, grid.Pt(0, 6))
	require.NoError(t, err)

	pts := res.Points()
	require.GreaterOrEqual(t, len(pts), 2)
	for i := 1; i < len(pts)-1; i++ {
		assert.True(t, pts[i-1].Adjacent(pts[i]), "step %d not adjacent", i)
		assert.Less(t, f.At(pts[i].X, pts[i].Y), f.At(pts[i-1].X, pts[i-1].Y))
	}
	assert.Equal(t, pts[len(pts)-2], pts[len(pts)-1], "final cell is recorded twice")
	assert.Equal(t, descent.Reached, res.Status)
}

// TestExtract_SnapToFree starts on the wall at (2,1); the first free
// neighbor in expansion order is (1,0).
func TestExtract_SnapToFree(t *testing.T) {
	g, f := fields(t, sampleMaze, grid.Pt(5, 6))

	res, err := descent.Extract(g, f, grid.Pt(2, 1))
	require.NoError(t, err)
	assert.True(t, res.Snapped)
	assert.Equal(t, grid.Pt(1, 0), res.Start)
	assert.Equal(t, []int{1, 1, 2, 3, 3, 4, 4}, res.Xs)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 5}, res.Ys)
}

// TestExtract_StartIsGoal yields a single-point path.
func TestExtract_StartIsGoal(t *testing.T) {
	g, f := fields(t, sampleMaze, grid.Pt(3, 3))
	res, err := descent.Extract(g, f, grid.Pt(3, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.Xs)
	assert.Equal(t, []int{3}, res.Ys)
	assert.Equal(t, descent.Reached, res.Status)
}

// TestExtract_OpenField walks the diagonal of an empty 3×3 grid and stops
// next to the goal.
func TestExtract_OpenField(t *testing.T) {
	g, f := fields(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, grid.Pt(2, 2))
	res, err := descent.Extract(g, f, grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, res.Xs)
	assert.Equal(t, []int{0, 1, 1}, res.Ys)
	assert.Equal(t, descent.Reached, res.Status)
}

// TestExtract_Unreachable starts in a region the goal wavefront never
// entered: the walk stalls at once.
func TestExtract_Unreachable(t *testing.T) {
	g, f := fields(t, [][]int{{0, 1, 0}}, grid.Pt(2, 0))
	res, err := descent.Extract(g, f, grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Xs)
	assert.Equal(t, []int{0, 0}, res.Ys)
	assert.Equal(t, descent.Stalled, res.Status)
}

// TestExtract_SnapLimit: the only free cell is the far corner.
//
//	1 1 1
//	1 1 1
//	1 1 0
func TestExtract_SnapLimit(t *testing.T) {
	labels := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 0}}
	g, f := fields(t, labels, grid.Pt(2, 2))

	res, err := descent.Extract(g, f, grid.Pt(0, 0), descent.WithSnapLimit(3))
	require.ErrorIs(t, err, descent.ErrNoFreeCell)
	assert.Equal(t, descent.NoFreeCell, res.Status)
	assert.Zero(t, res.Len())
	_, ok := res.End()
	assert.False(t, ok)

	res, err = descent.Extract(g, f, grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(2, 2), res.Start)
	assert.Equal(t, []int{2}, res.Xs)
	assert.Equal(t, descent.Reached, res.Status)
}

// TestExtract_MaxSteps truncates the walk after one move.
func TestExtract_MaxSteps(t *testing.T) {
	g, f := fields(t, sampleMaze, grid.Pt(5, 6))
	res, err := descent.Extract(g, f, grid.Pt(1, 1), descent.WithMaxSteps(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, res.Xs)
	assert.Equal(t, []int{1, 2, 2}, res.Ys)
	assert.Equal(t, descent.Stalled, res.Status)
}

func TestExtract_Errors(t *testing.T) {
	g, f := fields(t, sampleMaze, grid.Pt(5, 6))
	small, _ := fields(t, [][]int{{0, 0}}, grid.Pt(0, 0))

	cases := []struct {
		name  string
		g     *grid.Grid
		f     *costfield.GoalField
		start grid.Point
		opts  []descent.Option
		err   error
	}{
		{"NilGrid", nil, f, grid.Pt(0, 0), nil, descent.ErrNilInput},
		{"NilField", g, nil, grid.Pt(0, 0), nil, descent.ErrNilInput},
		{"OutOfBounds", g, f, grid.Pt(8, 0), nil, descent.ErrOutOfBounds},
		{"Negative", g, f, grid.Pt(0, -1), nil, descent.ErrOutOfBounds},
		{"Mismatch", small, f, grid.Pt(0, 0), nil, descent.ErrDimensionMismatch},
		{"BadSnap", g, f, grid.Pt(0, 0), []descent.Option{descent.WithSnapLimit(-1)}, descent.ErrOptionViolation},
		{"BadSteps", g, f, grid.Pt(0, 0), []descent.Option{descent.WithMaxSteps(-2)}, descent.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := descent.Extract(tc.g, tc.f, tc.start, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "reached", descent.Reached.String())
	assert.Equal(t, "stalled", descent.Stalled.String())
	assert.Equal(t, "no-free-cell", descent.NoFreeCell.String())
	assert.Equal(t, "Status(9)", descent.Status(9).String())
}
