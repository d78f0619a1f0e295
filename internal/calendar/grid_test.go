package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid_Shape(t *testing.T) {
	months := []domain.MonthCursor{
		{Year: 2025, Month: time.March},    // 1-е суббота
		{Year: 2025, Month: time.June},     // 1-е воскресенье
		{Year: 2026, Month: time.February}, // 28 дней, начинается в воскресенье
		{Year: 2024, Month: time.February}, // високосный год
		{Year: 2024, Month: time.December},
	}

	for _, visible := range months {
		t.Run(visible.FirstDay().Format("2006-01"), func(t *testing.T) {
			cells := MonthGrid(visible, date(2000, time.January, 1))
			require.Len(t, cells, domain.MonthGridCells)
			assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
			assert.False(t, cells[0].Date.After(visible.FirstDay()))

			seen := map[int]int{}
			for i, cell := range cells {
				if i > 0 {
					assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cell.Date)
				}
				if visible.Contains(cell.Date) {
					assert.False(t, cell.OtherMonth)
					seen[cell.Date.Day()]++
				} else {
					assert.True(t, cell.OtherMonth)
				}
			}

			daysInMonth := visible.Next().FirstDay().AddDate(0, 0, -1).Day()
			assert.Len(t, seen, daysInMonth)
			for day, count := range seen {
				assert.Equal(t, 1, count, "day %d", day)
			}
		})
	}
}

func TestMonthGrid_Selectable(t *testing.T) {
	today := date(2025, time.March, 10)
	visible := domain.MonthCursor{Year: 2025, Month: time.March}

	for _, cell := range MonthGrid(visible, today) {
		expected := visible.Contains(cell.Date) && !cell.Date.Before(today)
		assert.Equal(t, expected, cell.Selectable, cell.Date.Format(domain.DateFormat))
		assert.Equal(t, cell.Date.Equal(today), cell.Today)
		assert.Equal(t, cell.Date.Before(today), cell.Past)
	}

	assert.True(t, IsSelectable(today, visible, today))
	assert.False(t, IsSelectable(date(2025, time.March, 9), visible, today))
	// дни следующего месяца в хвосте сетки не выбираются
	assert.False(t, IsSelectable(date(2025, time.April, 1), visible, today))
}

func TestMonthGrid_TodayWithClock(t *testing.T) {
	// время суток у today не влияет на выбор
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	visible := domain.MonthOf(today)

	cells := MonthGrid(visible, today)
	var found bool
	for _, cell := range cells {
		if cell.Today {
			found = true
			assert.True(t, cell.Selectable)
			assert.Equal(t, 10, cell.Date.Day())
		}
	}
	assert.True(t, found)
}

func TestCells_Restartable(t *testing.T) {
	seq := Cells(domain.MonthCursor{Year: 2025, Month: time.March}, date(2025, time.March, 1))

	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	assert.Equal(t, domain.MonthGridCells, first)
	assert.Equal(t, first, second)

	// ранний выход
	var taken int
	for range seq {
		taken++
		if taken == 7 {
			break
		}
	}
	assert.Equal(t, 7, taken)
}
