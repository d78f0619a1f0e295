package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

func TestMonthCursor_Shift(t *testing.T) {
	tests := []struct {
		name string
		from MonthCursor
		n    int
		want MonthCursor
	}{
		{name: "next within year", from: MonthCursor{2025, time.March}, n: 1, want: MonthCursor{2025, time.April}},
		{name: "next rolls year", from: MonthCursor{2025, time.December}, n: 1, want: MonthCursor{2026, time.January}},
		{name: "prev rolls year", from: MonthCursor{2025, time.January}, n: -1, want: MonthCursor{2024, time.December}},
		{name: "far future", from: MonthCursor{2025, time.March}, n: 25, want: MonthCursor{2027, time.April}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Shift(tt.n))
		})
	}
}

func TestMonthCursor_NextPrevFrom31st(t *testing.T) {
	// курсор хранит только год и месяц, поэтому 31 января не "перепрыгивает" февраль
	jan := MonthOf(time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, MonthCursor{2025, time.February}, jan.Next())
	assert.Equal(t, jan, jan.Next().Prev())
}

func TestAppointment_Occupies(t *testing.T) {
	apt := Appointment{
		ID:   1,
		Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Time: types.TimeString("09:00"),
	}

	assert.True(t, apt.Occupies(time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC), "09:00"))
	assert.False(t, apt.Occupies(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), "09:30"))
	assert.False(t, apt.Occupies(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), "09:00"))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2025, time.March, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), DateOf(late))
	assert.True(t, IsBeforeDay(late, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsBeforeDay(late, DateOf(late)))
}

func TestSlotCatalog(t *testing.T) {
	catalog := DefaultSlotCatalog()

	assert.Len(t, catalog, 13)
	assert.True(t, catalog.Contains("11:30"))
	assert.False(t, catalog.Contains("12:00"))
}

func TestEngineState_HasSelectedTime(t *testing.T) {
	slot := types.TimeString("09:00")
	state := EngineState{SelectedTime: &slot}
	assert.False(t, state.HasSelectedTime())

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	state.SelectedDate = &date
	assert.True(t, state.HasSelectedTime())
}
