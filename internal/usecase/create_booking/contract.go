package create_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// AppointmentStore интерфейс хранилища записей.
// Update читает актуальную коллекцию, передает ее в mutate и сохраняет результат атомарно;
// ошибка mutate возвращается как есть, а при ошибке записи возвращается и новая коллекция.
type AppointmentStore interface {
	Update(
		ctx context.Context,
		mutate func(current []domain.Appointment) ([]domain.Appointment, error),
	) ([]domain.Appointment, error)
}

// IDGenerator генератор уникальных ID записей
type IDGenerator interface {
	Next() int64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
