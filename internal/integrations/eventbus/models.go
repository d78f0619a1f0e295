package eventbus

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// Типы событий
const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
)

// Заголовки сообщений
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// Event модель события о записи
type Event struct {
	ID          string    `json:"eventId"`
	Type        string    `json:"type"`
	OccurredAt  time.Time `json:"occurredAt"`
	Appointment Payload   `json:"appointment"`
}

// Payload данные записи в событии
type Payload struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// FromDomain конвертирует запись в payload события
func FromDomain(a domain.Appointment) Payload {
	return Payload{
		ID:    a.ID,
		Date:  a.Date.Format(domain.DateFormat),
		Time:  a.Time.String(),
		Name:  a.ClientName,
		Phone: a.ClientPhone,
	}
}
