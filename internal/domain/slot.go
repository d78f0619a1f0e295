package domain

import "github.com/m04kA/SMC-BookingWidget/pkg/types"

// SlotAvailability is the state of one catalog slot on a selected date
type SlotAvailability struct {
	Time     types.TimeString
	Occupied bool
}

// IsSelectable returns true if the slot can be clicked
func (s *SlotAvailability) IsSelectable() bool {
	return !s.Occupied
}

// SlotCatalog is the fixed ordered list of slot labels, identical for every date
type SlotCatalog []types.TimeString

// Contains returns true if the label is part of the catalog
func (c SlotCatalog) Contains(slot types.TimeString) bool {
	for _, s := range c {
		if s == slot {
			return true
		}
	}
	return false
}

// DefaultSlotCatalog returns the morning and afternoon bands with the lunch break
func DefaultSlotCatalog() SlotCatalog {
	catalog := make(SlotCatalog, len(DefaultTimeSlots))
	for i, s := range DefaultTimeSlots {
		catalog[i] = types.TimeString(s)
	}
	return catalog
}
