package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Clock returns the current moment. The zero value is not usable, use System.
type Clock func() time.Time

// System is the wall clock.
var System Clock = time.Now

func (c Clock) Now() time.Time {
	return c()
}

// OffsetFromNow is the current moment advanced by days.
func (c Clock) OffsetFromNow(days int) time.Time {
	return AddDays(c(), days)
}

// AddDays moves t by n calendar days, keeping the wall-clock time.
// Negative n moves backwards.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func IsWeekday(t time.Time, day time.Weekday) bool {
	return t.Weekday() == day
}

// SameDate reports whether a and b fall on the same calendar day,
// ignoring the time of day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func DateWithOffsetFromNow(days int) time.Time {
	return System.OffsetFromNow(days)
}

// ParseWeekday accepts English weekday names in any case, e.g. "sunday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty weekday")
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
