package models

import "github.com/m04kA/SMC-BookingWidget/internal/ui"

// Направления навигации по месяцам
const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

// View состояние сессии после обработки события
type View struct {
	SessionID    string      `json:"sessionId"`
	Phase        string      `json:"phase"`
	VisibleMonth string      `json:"visibleMonth"`           // YYYY-MM
	SelectedDate *string     `json:"selectedDate,omitempty"` // YYYY-MM-DD
	SelectedTime *string     `json:"selectedTime,omitempty"`
	Dispatched   bool        `json:"dispatched"` // клик дошел до привязанного элемента
	Page         ui.Snapshot `json:"page"`
}
