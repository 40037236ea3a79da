// Package calc: functional configuration for the Calculator.
// Options follow the usual contract: safe to apply repeatedly, no global
// state, panic only on nonsensical parameters (programmer error).
package calc

import "log/slog"

// Option mutates a Calculator during New.
type Option func(*Calculator)

// WithLogger routes every successful calculation to logger at Debug level.
// A nil logger restores the default silent behavior.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}
