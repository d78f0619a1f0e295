package select_slot

import (
	"context"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	SelectSlot(ctx context.Context, sessionID string, slot types.TimeString) (*models.View, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
