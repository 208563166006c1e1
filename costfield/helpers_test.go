package costfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

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

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, labels [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(labels)
	require.NoError(t, err)
	return g
}

// rawRows reshapes the raw distances of w into [y][x].
func rawRows(w interface {
	RawAt(x, y int) int
}, width, height int) [][]int {
	out := make([][]int, height)
	for y := range out {
		out[y] = make([]int, width)
		for x := range out[y] {
			out[y][x] = w.RawAt(x, y)
		}
	}
	return out
}
