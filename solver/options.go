package solver

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wavepath/descent"
)

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds Solver configuration.
type Options struct {
	// Logger receives structured planning events.
	Logger logrus.FieldLogger

	// SnapLimit bounds snap-to-free; 0 means Width*Height.
	SnapLimit int

	// MaxSteps bounds greedy descent; 0 means Width*Height.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a discarding logger and grid-sized bounds.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{Logger: l}
}

// WithLogger routes planning events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSnapLimit bounds snap-to-free to n examined cells (n ≥ 0).
func WithSnapLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: SnapLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SnapLimit = n
	}
}

// WithMaxSteps bounds greedy descent to n moves (n ≥ 0).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

func (o Options) descentOptions() []descent.Option {
	return []descent.Option{
		descent.WithSnapLimit(o.SnapLimit),
		descent.WithMaxSteps(o.MaxSteps),
	}
}
