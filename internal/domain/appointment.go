package domain

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// Appointment represents a booked time slot on a calendar day.
// Appointments are never mutated: cancel and rebook is the only way to change one.
type Appointment struct {
	ID          int64
	Date        time.Time // day granularity, see DateOf
	Time        types.TimeString
	ClientName  string
	ClientPhone string
}

// Occupies returns true if the appointment holds the given slot on the given day
func (a *Appointment) Occupies(date time.Time, slot types.TimeString) bool {
	return a.Time == slot && SameDay(a.Date, date)
}

// StartsAt returns the appointment start as a single chronological key
func (a *Appointment) StartsAt() time.Time {
	at, err := a.Time.On(a.Date)
	if err != nil {
		return DateOf(a.Date)
	}
	return at
}

// DateOf strips the time of day, keeping the calendar date as read on t's own clock.
// All dates in the engine are midnight UTC so that day arithmetic never crosses a DST change.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if both values fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsBeforeDay returns true if a is on an earlier calendar date than b
func IsBeforeDay(a, b time.Time) bool {
	return DateOf(a).Before(DateOf(b))
}
