package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/internal/ui"
)

// Widget движок бронирования одной страницы
type Widget interface {
	Init(ctx context.Context)
	State() domain.EngineState
}

// WidgetFactory создает движок, рисующий на page
type WidgetFactory func(page *ui.Page) Widget

// Metrics интерфейс метрик сессий
type Metrics interface {
	SessionOpened()
	SessionClosed()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
