package close_session

import "context"

// SessionService интерфейс сервиса сессий
type SessionService interface {
	Close(ctx context.Context, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
