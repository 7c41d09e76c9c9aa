// This file implements Config and its functional options.
package solve

import (
	"io"
	"log/slog"
	"time"
)

// Config carries the per-call solver configuration. Build it with
// NewConfig; the zero value means "no limits, quiet, engine defaults".
type Config struct {
	// TimeLimit caps wall-clock solve duration; 0 means no limit.
	// On expiry the result may be suboptimal-but-feasible.
	TimeLimit time.Duration

	// MIPGap is the relative optimality tolerance for integer programs.
	MIPGap float64

	// Verbose enables engine progress logging.
	Verbose bool

	// Threads is the engine's internal worker count; 0 leaves the
	// engine's default.
	Threads int

	// Params maps engine-specific tuning keys to values, passed through
	// without interpretation.
	Params map[string]any

	// Logger receives progress output when Verbose is set. Nil uses
	// slog.Default().
	Logger *slog.Logger

	// Backend, when non-nil, replaces the mod's default engine for this
	// call.
	Backend Backend
}

// Option configures a single solve call.
type Option func(*Config)

// NewConfig builds a Config from options.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Log returns the logger to use: the configured one when Verbose, and a
// discarding logger otherwise. Never nil.
func (c Config) Log() *slog.Logger {
	if !c.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}

// Param returns a passthrough tuning value and whether it was set.
func (c Config) Param(key string) (any, bool) {
	v, ok := c.Params[key]

	return v, ok
}

// WithTimeLimit caps wall-clock solve duration.
// Panics if d is negative (programmer error).
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("solve: WithTimeLimit requires a non-negative duration")
	}

	return func(c *Config) { c.TimeLimit = d }
}

// WithMIPGap sets the relative optimality tolerance for integer programs.
// Panics if gap is negative (programmer error).
func WithMIPGap(gap float64) Option {
	if gap < 0 {
		panic("solve: WithMIPGap requires a non-negative gap")
	}

	return func(c *Config) { c.MIPGap = gap }
}

// WithVerbose enables engine progress logging.
func WithVerbose() Option {
	return func(c *Config) { c.Verbose = true }
}

// WithLogger directs progress logging to l (implies nothing about
// Verbose; combine with WithVerbose to see output).
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithThreads sets the engine's internal worker count.
// Panics if n < 1 (programmer error).
func WithThreads(n int) Option {
	if n < 1 {
		panic("solve: WithThreads requires n >= 1")
	}

	return func(c *Config) { c.Threads = n }
}

// WithParam attaches an engine-specific tuning key, passed through to the
// backend without interpretation.
func WithParam(key string, value any) Option {
	return func(c *Config) {
		if c.Params == nil {
			c.Params = make(map[string]any)
		}
		c.Params[key] = value
	}
}

// WithBackend replaces the mod's default engine for this call.
func WithBackend(b Backend) Option {
	return func(c *Config) { c.Backend = b }
}
