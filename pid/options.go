package pid

import (
	"errors"
	"fmt"
	"time"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pid: invalid option supplied")

// Option configures a Controller via functional arguments.
type Option func(*Options)

// Options holds controller parameters. A zero clamp or timeout disables it.
type Options struct {
	Kp, Ki, Kd float64
	Target     float64

	// DerivativeWindow is the number of rates averaged into D (≥ 1).
	DerivativeWindow int

	// IntegralTimeout resets I when the time step exceeds it.
	IntegralTimeout time.Duration

	IntegralClamp float64
	OutputClamp   float64
	InputClamp    float64

	// RestOutput is returned for readings beyond InputClamp.
	RestOutput float64

	// Now supplies the clock; defaults to time.Now.
	Now func() time.Time

	err error
}

// DefaultOptions returns zero gains, a one-sample derivative window,
// no clamps, no timeout and the wall clock.
func DefaultOptions() Options {
	return Options{
		DerivativeWindow: 1,
		Now:              time.Now,
	}
}

// WithGains sets the proportional, integral and derivative gains.
func WithGains(kp, ki, kd float64) Option {
	return func(o *Options) {
		o.Kp, o.Ki, o.Kd = kp, ki, kd
	}
}

// WithTarget sets the initial setpoint.
func WithTarget(target float64) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithDerivativeWindow averages the derivative over the last n rates.
func WithDerivativeWindow(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: DerivativeWindow must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.DerivativeWindow = n
	}
}

// WithIntegralTimeout resets the integral when a step is longer than d.
func WithIntegralTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: IntegralTimeout cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.IntegralTimeout = d
	}
}

// WithIntegralClamp limits the integral to ±v.
func WithIntegralClamp(v float64) Option {
	return clampOption("IntegralClamp", v, func(o *Options) { o.IntegralClamp = v })
}

// WithOutputClamp limits the output to ±v.
func WithOutputClamp(v float64) Option {
	return clampOption("OutputClamp", v, func(o *Options) { o.OutputClamp = v })
}

// WithInputClamp makes readings beyond ±v return the rest output.
func WithInputClamp(v float64) Option {
	return clampOption("InputClamp", v, func(o *Options) { o.InputClamp = v })
}

// WithRestOutput sets the output returned for out-of-range readings.
func WithRestOutput(v float64) Option {
	return func(o *Options) {
		o.RestOutput = v
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

func clampOption(name string, v float64, set func(*Options)) Option {
	return func(o *Options) {
		if v < 0 {
			o.err = fmt.Errorf("%w: %s cannot be negative (%g)", ErrOptionViolation, name, v)
			return
		}
		set(o)
	}
}
