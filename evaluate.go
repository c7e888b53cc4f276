package limits

import (
	"fmt"
	"log/slog"
	"time"
)

// IsTruthy evaluates the conditions of l in order and reports whether all of
// them hold. Evaluation stops at the first condition that does not hold. A
// Limit without conditions holds. The outcome passes through the evaluation
// override, if any, before being returned.
//
// Predicates run without any registry lock held. A predicate error aborts the
// evaluation and is returned as is.
func (r *Registry) IsTruthy(l *Limit) (bool, error) {
	if l == nil {
		return false, ErrNilLimit
	}

	now := r.now().In(r.loc)

	var failing Condition
	for _, c := range l.conditions {
		ok, err := r.check(c, now)
		if err != nil {
			r.logger.Debug("limit condition failed", slog.String("limit", l.name), slog.Any("error", err))
			return false, fmt.Errorf("evaluate limit %q: %w", l.name, err)
		}
		if !ok {
			failing = c
			break
		}
	}

	result := failing == nil
	if r.override != nil {
		result = r.override(result, l, failing)
	}
	return result, nil
}

// IsFalsy is the negation of IsTruthy.
func (r *Registry) IsFalsy(l *Limit) (bool, error) {
	ok, err := r.IsTruthy(l)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// State evaluates l and returns Truthy or Falsy.
func (r *Registry) State(l *Limit) (State, error) {
	ok, err := r.IsTruthy(l)
	if err != nil {
		return Falsy, err
	}
	return stateOf(ok), nil
}

// Within gets the Limit for name (see Get) and evaluates it.
func (r *Registry) Within(name string, conds ...Condition) (bool, error) {
	return r.IsTruthy(r.Get(name, conds...))
}

// WithinTimeLimits reports whether now is in [start, end). An empty name
// registers the window under a generated name.
func (r *Registry) WithinTimeLimits(start, end time.Time, name string) (bool, error) {
	return r.Within(name, Window(start, end))
}

func (r *Registry) check(c Condition, now time.Time) (bool, error) {
	switch c := c.(type) {
	case TimeWindow:
		return c.Contains(now, r.loc), nil
	case Predicate:
		if c == nil {
			return false, nil
		}
		return c()
	default:
		return false, nil
	}
}
