package select_date

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// ParseDate парсит дату запроса
func (r *SelectDateRequest) ParseDate() (time.Time, error) {
	return time.Parse(domain.DateFormat, r.Date)
}
