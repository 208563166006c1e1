// Package descent extracts a discrete path from a cost-to-goal field by
// greedy descent, after snapping a start that sits on a wall to the nearest
// free cell.
package descent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
)

// Sentinel errors for path extraction.
var (
	// ErrNilInput is returned when the grid or field is nil.
	ErrNilInput = errors.New("descent: grid or field is nil")
	// ErrOutOfBounds is returned when the start lies outside the grid.
	ErrOutOfBounds = errors.New("descent: start out of bounds")
	// ErrDimensionMismatch is returned when field and grid sizes differ.
	ErrDimensionMismatch = errors.New("descent: field dimensions do not match grid")
	// ErrNoFreeCell is returned when snap-to-free exhausts its search bound.
	ErrNoFreeCell = errors.New("descent: no free cell reachable from start")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("descent: invalid option supplied")
)

// Status classifies how an extraction ended.
type Status int

const (
	// Reached means the walk ended on the goal or on one of its 8 neighbors.
	// The descent never steps onto the goal itself: only costs strictly
	// between 0 and the current cost are candidates.
	Reached Status = iota
	// Stalled means no neighbor improved on the current cost before the goal.
	Stalled
	// NoFreeCell means the start was on a wall and snap-to-free found nothing
	// within its bound. The path is empty.
	NoFreeCell
)

func (s Status) String() string {
	switch s {
	case Reached:
		return "reached"
	case Stalled:
		return "stalled"
	case NoFreeCell:
		return "no-free-cell"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one extraction.
//   - Xs, Ys: index-aligned path coordinates, start first. The final cell
//     is appended a second time, so a non-empty path has length ≥ 2 unless
//     the start was the goal.
//   - Start: the cell descent began from, after snap-to-free.
//   - Snapped: true if Start differs from the requested start.
//   - Status: see Status.
type Result struct {
	Xs, Ys  []int
	Start   grid.Point
	Snapped bool
	Status  Status
}

// Len returns the number of path entries.
func (r Result) Len() int {
	return len(r.Xs)
}

// Points returns the path as a slice of Points.
func (r Result) Points() []grid.Point {
	pts := make([]grid.Point, len(r.Xs))
	for i := range r.Xs {
		pts[i] = grid.Point{X: r.Xs[i], Y: r.Ys[i]}
	}
	return pts
}

// End returns the last path cell and false when the path is empty.
func (r Result) End() (grid.Point, bool) {
	if len(r.Xs) == 0 {
		return grid.Point{}, false
	}
	n := len(r.Xs) - 1
	return grid.Point{X: r.Xs[n], Y: r.Ys[n]}, true
}

// Option configures extraction via functional arguments.
type Option func(*Options)

// Options holds the search bounds for one extraction.
type Options struct {
	// SnapLimit caps the number of cells snap-to-free may examine.
	// 0 means Width*Height.
	SnapLimit int

	// MaxSteps caps the number of descent moves. 0 means Width*Height.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with both bounds derived from grid size.
func DefaultOptions() Options {
	return Options{}
}

// WithSnapLimit bounds snap-to-free to n examined cells.
//
//	n > 0: limit to n cells
//	n == 0: Width*Height
//	n < 0: ErrOptionViolation
func WithSnapLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: SnapLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SnapLimit = n
	}
}

// WithMaxSteps bounds greedy descent to n moves.
//
//	n > 0: limit to n moves
//	n == 0: Width*Height
//	n < 0: ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
