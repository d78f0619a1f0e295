package select_slot

import "github.com/m04kA/SMC-BookingWidget/pkg/types"

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Time string `json:"time"` // HH:MM
}

// ParseTime парсит метку слота
func (r *SelectSlotRequest) ParseTime() (types.TimeString, error) {
	return types.NewTimeStringFromString(r.Time)
}
