package domain

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// Element ids of the widget page layout
const (
	ElementMonthYear     = "monthYear"
	ElementCalendar      = "calendar"
	ElementPrevMonth     = "prevMonth"
	ElementNextMonth     = "nextMonth"
	ElementTimeSlots     = "timeSlots" // slots section, visible with ClassActive
	ElementSelectedDate  = "selectedDate"
	ElementSlotsGrid     = "slotsGrid"
	ElementBookingForm   = "bookingForm" // visible with ClassActive
	ElementClientName    = "clientName"
	ElementClientPhone   = "clientPhone"
	ElementInputDate     = "inputFecha"
	ElementInputTime     = "inputHora"
	ElementConfirm       = "confirmBooking"
	ElementCancelForm    = "cancelBooking"
	ElementAppointments  = "appointmentsList"
	dayElementPrefix     = "day-"
	slotElementPrefix    = "slot-"
	cancelElementPrefix  = "cancel-"
	appointmentElementID = "appointment-"
)

// CSS classes toggled by the engine
const (
	ClassDayHeader   = "day-header"
	ClassDayCell     = "day-cell"
	ClassOtherMonth  = "other-month"
	ClassToday       = "today"
	ClassPast        = "past"
	ClassDisabled    = "disabled"
	ClassSelected    = "selected"
	ClassTimeSlot    = "time-slot"
	ClassOccupied    = "occupied"
	ClassActive      = "active"
	ClassAppointment = "appointment-item"
	ClassNoItems     = "no-appointments"
	ClassCancelBtn   = "btn-cancel"
)

// Node kinds
const (
	NodeText   = "text"
	NodeDay    = "day"
	NodeSlot   = "slot"
	NodeItem   = "item"
	NodeButton = "button"
)

// Node is one element rendered into a page container
type Node struct {
	ID       string   `json:"id,omitempty"`
	Kind     string   `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Children []Node   `json:"children,omitempty"`
}

// DayElementID returns the id of the calendar cell for date
func DayElementID(date time.Time) string {
	return dayElementPrefix + date.Format(DateFormat)
}

// SlotElementID returns the id of the slot button
func SlotElementID(slot types.TimeString) string {
	return slotElementPrefix + slot.String()
}

// CancelElementID returns the id of the cancel button of an appointment row
func CancelElementID(id int64) string {
	return cancelElementPrefix + strconv.FormatInt(id, 10)
}

// AppointmentElementID returns the id of an appointment row
func AppointmentElementID(id int64) string {
	return appointmentElementID + strconv.FormatInt(id, 10)
}
