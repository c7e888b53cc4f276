package limits

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RewriteFunc maps the name a caller supplied to the name used as storage key.
type RewriteFunc func(name string, conds []Condition) string

// OverrideFunc may replace the outcome of an evaluation. failing is the
// condition that short-circuited the evaluation, or nil when every condition held.
type OverrideFunc func(proposed bool, l *Limit, failing Condition) bool

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocation sets the timezone time windows are resolved in.
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithNameRewrite sets the hook that maps every name passed to Register, Get
// and Exists to its storage key.
func WithNameRewrite(fn RewriteFunc) Option {
	return func(r *Registry) { r.rewrite = fn }
}

// WithEvaluationOverride sets the hook that may replace every evaluation outcome.
func WithEvaluationOverride(fn OverrideFunc) Option {
	return func(r *Registry) { r.override = fn }
}

// WithTempName sets the generator for names of limits registered without one.
func WithTempName(fn func() string) Option {
	return func(r *Registry) {
		if fn != nil {
			r.tempName = fn
		}
	}
}

// WithLogger sets the logger used for registration warnings and evaluation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func defaultTempName() string {
	return uuid.NewString()
}
