package utils

import "time"

// BeginningOfMonth returns the first instant of t's calendar month in t's
// location. The financial window runs from here with no upper bound.
func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from start to end, negative when
// end is before start. Both dates are re-anchored in UTC so that a 23- or
// 25-hour DST day still counts as exactly one day.
func DaysBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
