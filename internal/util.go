package internal

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDay strips the clock from t, keeping the UTC calendar day.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether t1 and t2 fall on the same UTC calendar day.
func SameCalendarDay(t1, t2 time.Time) bool {
	return t1.UTC().Format(time.DateOnly) == t2.UTC().Format(time.DateOnly)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(time.DateOnly) == t2.Format(time.DateOnly)
}
