package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// ComputeSlotAvailability размечает каждый слот каталога на дату.
// Слот занят, если есть запись с той же датой и той же меткой времени.
func ComputeSlotAvailability(date time.Time, appointments []domain.Appointment, catalog domain.SlotCatalog) []domain.SlotAvailability {
	slots := make([]domain.SlotAvailability, 0, len(catalog))
	for _, label := range catalog {
		slots = append(slots, domain.SlotAvailability{
			Time:     label,
			Occupied: isOccupied(date, label.String(), appointments),
		})
	}
	return slots
}

func isOccupied(date time.Time, label string, appointments []domain.Appointment) bool {
	for i := range appointments {
		if appointments[i].Time.String() == label && domain.SameDay(appointments[i].Date, date) {
			return true
		}
	}
	return false
}
