package conditions

import (
	"time"

	"github.com/aryangodara/limits"
)

// TodayWindow returns the window [from, to) measured from midnight of now's
// calendar day, in now's location. TodayWindow(now, 9*time.Hour, 17*time.Hour)
// is 9:00 am to 5:00 pm of that day.
func TodayWindow(now time.Time, from, to time.Duration) limits.TimeWindow {
	midnight := startOfDay(now)
	return limits.Window(addClock(midnight, from), addClock(midnight, to))
}

// DailyWindow returns a Predicate holding while the clock is in [from, to) of
// its current day.
func DailyWindow(now func() time.Time, from, to time.Duration) limits.Predicate {
	return limits.Func(func() bool {
		t := now()
		return TodayWindow(t, from, to).Contains(t, nil)
	})
}

// NthWeekday returns the whole day of the n-th weekday of a month, e.g. the
// fourth Thursday of November. n past the end of the month rolls into the next one.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int, loc *time.Location) limits.TimeWindow {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := first.AddDate(0, 0, offset+7*(n-1))

	return limits.Window(day, day.AddDate(0, 0, 1))
}

// YearlyNthWeekday returns a Predicate holding on the n-th weekday of month
// in whatever year the clock currently reads.
func YearlyNthWeekday(now func() time.Time, month time.Month, weekday time.Weekday, n int) limits.Predicate {
	return limits.Func(func() bool {
		t := now()
		return NthWeekday(t.Year(), month, weekday, n, t.Location()).Contains(t, nil)
	})
}

// Weekdays returns a Predicate holding on the given days of the week.
func Weekdays(now func() time.Time, days ...time.Weekday) limits.Predicate {
	set := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}

	return limits.Func(func() bool {
		_, ok := set[now().Weekday()]
		return ok
	})
}

// Weekday holds Monday through Friday.
func Weekday(now func() time.Time) limits.Predicate {
	return Weekdays(now, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

// Weekend holds on Saturday and Sunday.
func Weekend(now func() time.Time) limits.Predicate {
	return Weekdays(now, time.Saturday, time.Sunday)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// addClock adds a wall-clock offset so DST transitions don't shift the hour.
func addClock(midnight time.Time, d time.Duration) time.Time {
	y, m, day := midnight.Date()
	return time.Date(y, m, day, 0, 0, 0, int(d), midnight.Location())
}
