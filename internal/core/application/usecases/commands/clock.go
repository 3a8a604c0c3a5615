package commands

import "time"

// clock supplies the single timestamp shared by all stages of one command
// invocation, so the order's updatedAt and the history entry agree exactly.
type clock struct {
	now func() time.Time
}

// HandlerOption configures a command handler.
type HandlerOption func(*clock)

// WithClock overrides a handler's time source. Intended for tests.
func WithClock(now func() time.Time) HandlerOption {
	return func(c *clock) {
		c.now = now
	}
}
