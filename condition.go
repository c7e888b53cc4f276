package limits

import "time"

var (
	_ Condition = TimeWindow{}
	_ Condition = Predicate(nil)
)

// Condition is a single check inside a Limit. It is either a TimeWindow or a Predicate.
type Condition interface {
	condition()
}

// TimeWindow holds while the current instant is in [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

func (TimeWindow) condition() {}

// Window builds a TimeWindow.
func Window(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

// Valid reports whether both bounds are set. An invalid window never holds.
func (w TimeWindow) Valid() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// Contains reports whether now is in [Start, End) once all three instants are
// moved into loc.
func (w TimeWindow) Contains(now time.Time, loc *time.Location) bool {
	if !w.Valid() {
		return false
	}
	if loc != nil {
		now = now.In(loc)
	}
	start, end := w.Start.In(now.Location()), w.End.In(now.Location())

	return !now.Before(start) && now.Before(end)
}

// Predicate is an arbitrary zero-argument check. A returned error aborts the
// evaluation of the Limit holding it.
type Predicate func() (bool, error)

func (Predicate) condition() {}

// Func adapts a plain boolean callback into a Predicate.
func Func(fn func() bool) Predicate {
	return func() (bool, error) {
		return fn(), nil
	}
}

var (
	// Always is a Predicate that always holds.
	Always = Func(func() bool { return true })
	// Never is a Predicate that never holds. Limits created on demand for
	// unknown names carry it.
	Never = Func(func() bool { return false })
)
