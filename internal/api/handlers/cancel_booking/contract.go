package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	CancelAppointment(ctx context.Context, sessionID string, appointmentID int64, confirm bool) (*models.View, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
