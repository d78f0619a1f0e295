package bookings

import (
	"context"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// AppointmentStore интерфейс хранилища записей
type AppointmentStore interface {
	Load(ctx context.Context) ([]domain.Appointment, error)
	Update(
		ctx context.Context,
		mutate func(current []domain.Appointment) ([]domain.Appointment, error),
	) ([]domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
