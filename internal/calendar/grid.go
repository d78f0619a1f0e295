// Package calendar builds the month grid shown by the booking widget.
package calendar

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// GridStart returns the Sunday on or before the 1st of the visible month
func GridStart(visible domain.MonthCursor) time.Time {
	first := visible.FirstDay()
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// Cells yields the 42 cells of the month grid, six full weeks starting on Sunday.
// The sequence is lazy and can be ranged over any number of times.
func Cells(visible domain.MonthCursor, today time.Time) iter.Seq[domain.DayCell] {
	today = domain.DateOf(today)
	start := GridStart(visible)

	return func(yield func(domain.DayCell) bool) {
		for i := 0; i < domain.MonthGridCells; i++ {
			date := start.AddDate(0, 0, i)
			if !yield(cellFor(date, visible, today)) {
				return
			}
		}
	}
}

// MonthGrid returns the grid cells as a slice
func MonthGrid(visible domain.MonthCursor, today time.Time) []domain.DayCell {
	cells := make([]domain.DayCell, 0, domain.MonthGridCells)
	for cell := range Cells(visible, today) {
		cells = append(cells, cell)
	}
	return cells
}

// IsSelectable returns true if date can be picked while visible is shown
func IsSelectable(date time.Time, visible domain.MonthCursor, today time.Time) bool {
	return visible.Contains(date) && !domain.IsBeforeDay(date, today)
}

func cellFor(date time.Time, visible domain.MonthCursor, today time.Time) domain.DayCell {
	return domain.DayCell{
		Date:       date,
		OtherMonth: !visible.Contains(date),
		Today:      date.Equal(today),
		Past:       date.Before(today),
		Selectable: IsSelectable(date, visible, today),
	}
}
