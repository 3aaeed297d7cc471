package model

import "time"

// Date is a calendar date as uint32 YYYYMMDD (e.g., 20231117).
type Date uint32

// Valid reports whether d is a real 8-digit calendar date.
func (d Date) Valid() bool {
	y, m, day := d.split()
	if y < 1900 || y > 2999 || m < 1 || m > 12 || day < 1 || day > 31 {
		return false
	}
	// Reject overflow days (e.g., Feb 30): time.Date normalizes them
	// into the next month.
	t := time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == m
}

// Time returns the date at UTC midnight. Callers must check Valid first.
func (d Date) Time() time.Time {
	y, m, day := d.split()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the calendar-day difference from d to e.
// Negative when e precedes d.
func (d Date) DaysUntil(e Date) int {
	return int(e.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) split() (year, month, day int) {
	return int(d / 10000), int(d / 100 % 100), int(d % 100)
}
