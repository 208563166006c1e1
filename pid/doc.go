// Package pid implements a single-input single-output PID controller with
// wall-clock time steps, a clamped and time-out-reset integral, and a
// derivative smoothed over a sliding window of recent error rates.
//
// The controller is independent of the grid planner: it turns a sensor
// reading into an actuator output, one Compute call per control tick.
//
// Compute:
//
//	dt   = now − last call
//	err  = target − value
//	I   += (err + lastErr)/2 · dt     (clamped to ±IntegralClamp, reset when dt > IntegralTimeout)
//	rate = (err − lastErr)/dt          (0 when dt ≤ 0)
//	D    = mean of the last DerivativeWindow rates
//	out  = Kp·err + Ki·I + Kd·D        (clamped to ±OutputClamp)
//
// A reading beyond ±InputClamp returns RestOutput and leaves state untouched.
//
// A Controller is not safe for concurrent use.
package pid
