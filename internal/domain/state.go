package domain

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// Phase is the position of the engine in the booking flow
type Phase string

const (
	PhaseBrowsing   Phase = "browsing"
	PhaseDateChosen Phase = "date_chosen"
	PhaseFormOpen   Phase = "form_open" // slot chosen, booking form visible
)

// EngineState is a snapshot of the booking engine
type EngineState struct {
	VisibleMonth MonthCursor
	SelectedDate *time.Time
	SelectedTime *types.TimeString
	Appointments []Appointment
	Phase        Phase
}

// HasSelectedDate returns true if a date is selected
func (s *EngineState) HasSelectedDate() bool {
	return s.SelectedDate != nil
}

// HasSelectedTime returns true if a slot is selected.
// A slot only counts while a date is selected.
func (s *EngineState) HasSelectedTime() bool {
	return s.SelectedDate != nil && s.SelectedTime != nil
}
