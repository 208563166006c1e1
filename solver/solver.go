package solver

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wavepath/costfield"
	"github.com/katalvlaran/wavepath/descent"
	"github.com/katalvlaran/wavepath/grid"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("solver: invalid option supplied")

// Solver plans paths over one grid. It keeps no state between calls and
// never mutates its grid.
type Solver struct {
	grid *grid.Grid
	opts Options
	log  logrus.FieldLogger
}

// New validates labels (indexed [y][x]) and returns a Solver for them.
// Returns grid.ErrEmptyGrid, grid.ErrNonRectangular or ErrOptionViolation.
func New(labels [][]int, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g, err := grid.New(labels)
	if err != nil {
		return nil, err
	}

	return &Solver{
		grid: g,
		opts: o,
		log:  o.Logger.WithFields(logrus.Fields{"width": g.Width, "height": g.Height}),
	}, nil
}

// Grid returns the grid the Solver plans over.
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}

// Solve plans from start to goal and returns the path as index-aligned
// x and y slices, start first. A path that stalls before the goal is
// returned without error; use Plan to observe the Status.
func (s *Solver) Solve(start, goal grid.Point) (xs, ys []int, err error) {
	res, err := s.Plan(start, goal)
	if err != nil {
		return nil, nil, err
	}
	return res.Xs, res.Ys, nil
}

// Plan is Solve returning the full descent.Result.
func (s *Solver) Plan(start, goal grid.Point) (descent.Result, error) {
	return s.plan(s.grid, start, goal, false)
}

// SolveInverted plans over the complement of the grid: labelled cells
// become free and free cells become walls. The Solver's grid is untouched.
func (s *Solver) SolveInverted(start, goal grid.Point) (xs, ys []int, err error) {
	res, err := s.PlanInverted(start, goal)
	if err != nil {
		return nil, nil, err
	}
	return res.Xs, res.Ys, nil
}

// PlanInverted is SolveInverted returning the full descent.Result.
func (s *Solver) PlanInverted(start, goal grid.Point) (descent.Result, error) {
	return s.plan(s.grid.Complement(), start, goal, true)
}

// Fields builds the wall and goal fields Plan would descend for goal.
func (s *Solver) Fields(goal grid.Point) (*costfield.WallField, *costfield.GoalField, error) {
	wall := costfield.BuildWall(s.grid)
	gf, err := costfield.BuildGoal(s.grid, wall, goal)
	if err != nil {
		return nil, nil, err
	}
	return wall, gf, nil
}

func (s *Solver) plan(g *grid.Grid, start, goal grid.Point, inverted bool) (descent.Result, error) {
	log := s.log.WithFields(logrus.Fields{
		"start":    start.String(),
		"goal":     goal.String(),
		"inverted": inverted,
	})

	wall := costfield.BuildWall(g)
	log.WithField("max_raw", wall.MaxRaw).Debug("wall field built")

	gf, err := costfield.BuildGoal(g, wall, goal)
	if err != nil {
		log.WithError(err).Debug("goal field rejected")
		return descent.Result{}, fmt.Errorf("solver: %w", err)
	}
	log.WithField("visited", gf.Visited).Debug("goal field built")

	res, err := descent.Extract(g, gf, start, s.opts.descentOptions()...)
	if err != nil {
		log.WithError(err).Warn("path extraction failed")
		return res, fmt.Errorf("solver: %w", err)
	}

	entry := log.WithFields(logrus.Fields{
		"status": res.Status.String(),
		"length": res.Len(),
	})
	if res.Snapped {
		entry = entry.WithField("snapped", res.Start.String())
	}
	if res.Status == descent.Stalled {
		entry.Warn("descent stalled before goal")
	} else {
		entry.Debug("path extracted")
	}
	return res, nil
}
