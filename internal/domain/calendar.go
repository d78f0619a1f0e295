package domain

import "time"

// MonthCursor is the year+month currently shown by the calendar
type MonthCursor struct {
	Year  int
	Month time.Month
}

// MonthOf returns the cursor for the month containing t
func MonthOf(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// Shift moves the cursor by n months, rolling the year over in both directions
func (c MonthCursor) Shift(n int) MonthCursor {
	return MonthOf(c.FirstDay().AddDate(0, n, 0))
}

// Next returns the following month
func (c MonthCursor) Next() MonthCursor {
	return c.Shift(1)
}

// Prev returns the preceding month
func (c MonthCursor) Prev() MonthCursor {
	return c.Shift(-1)
}

// FirstDay returns the 1st of the month at midnight UTC
func (c MonthCursor) FirstDay() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains returns true if date belongs to this month
func (c MonthCursor) Contains(date time.Time) bool {
	return date.Year() == c.Year && date.Month() == c.Month
}

// DayCell describes one cell of the month grid
type DayCell struct {
	Date       time.Time
	OtherMonth bool // belongs to the previous or next month, shown de-emphasized
	Today      bool
	Past       bool
	Selectable bool // Date >= today and inside the visible month
}
