package pid

import "time"

// Controller is a stateful PID loop. Create it with New.
type Controller struct {
	opts Options

	integral float64
	lastErr  float64
	last     time.Time

	rates []float64 // ring buffer of recent error rates
	pos   int
}

// New returns a Controller configured by opts. The first Compute measures
// its time step from this call.
func New(opts ...Option) (*Controller, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Controller{
		opts:  o,
		last:  o.Now(),
		rates: make([]float64, o.DerivativeWindow),
	}, nil
}

// Compute returns the actuator output for the sensor reading value.
func (c *Controller) Compute(value float64) float64 {
	o := &c.opts
	if o.InputClamp > 0 && (value > o.InputClamp || value < -o.InputClamp) {
		return o.RestOutput
	}

	now := o.Now()
	step := now.Sub(c.last)
	c.last = now
	dt := step.Seconds()

	err := o.Target - value

	c.integral += (err + c.lastErr) / 2 * dt
	if o.IntegralClamp > 0 {
		c.integral = clamp(c.integral, o.IntegralClamp)
	}
	if o.IntegralTimeout > 0 && step > o.IntegralTimeout {
		c.integral = 0
	}

	rate := 0.0
	if dt > 0 {
		rate = (err - c.lastErr) / dt
	}
	c.rates[c.pos] = rate
	c.pos = (c.pos + 1) % len(c.rates)
	sum := 0.0
	for _, r := range c.rates {
		sum += r
	}
	deriv := sum / float64(len(c.rates))

	c.lastErr = err

	out := o.Kp*err + o.Ki*c.integral + o.Kd*deriv
	if o.OutputClamp > 0 {
		out = clamp(out, o.OutputClamp)
	}
	return out
}

// SetTarget changes the setpoint.
func (c *Controller) SetTarget(target float64) {
	c.opts.Target = target
}

// Target returns the current setpoint.
func (c *Controller) Target() float64 {
	return c.opts.Target
}

// SetGains replaces the gains whose pointers are non-nil.
func (c *Controller) SetGains(kp, ki, kd *float64) {
	if kp != nil {
		c.opts.Kp = *kp
	}
	if ki != nil {
		c.opts.Ki = *ki
	}
	if kd != nil {
		c.opts.Kd = *kd
	}
}

// Gains returns the current proportional, integral and derivative gains.
func (c *Controller) Gains() (kp, ki, kd float64) {
	return c.opts.Kp, c.opts.Ki, c.opts.Kd
}

// Integral returns the accumulated integral term.
func (c *Controller) Integral() float64 {
	return c.integral
}

// Reset clears accumulated state and restarts the clock.
func (c *Controller) Reset() {
	c.integral = 0
	c.lastErr = 0
	for i := range c.rates {
		c.rates[i] = 0
	}
	c.pos = 0
	c.last = c.opts.Now()
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
