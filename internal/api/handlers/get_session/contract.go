package get_session

import (
	"context"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	View(ctx context.Context, sessionID string) (*models.View, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
