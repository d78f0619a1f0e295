package engine

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingWidget/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BookingWidget/internal/usecase/get_available_slots"
)

// Surface интерфейс страницы, на которую рисует движок
type Surface interface {
	Render(container string, nodes []domain.Node)
	OnClick(id string, handler func(ctx context.Context))
	SetText(id, text string)
	Value(id string) string
	SetValue(id, value string)
	ToggleClass(id, class string, on bool)
	Focus(id string)
	Alert(msg string)
	Confirm(msg string) bool
}

// AppointmentService интерфейс сервиса коллекции записей
type AppointmentService interface {
	Load(ctx context.Context) ([]domain.Appointment, error)
	Cancel(ctx context.Context, id int64) (*models.CancelResult, error)
}

// SlotsUseCase интерфейс вычисления занятости слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingUseCase интерфейс подтверждения записи
type BookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Formatter интерфейс локализации дат и текстов
type Formatter interface {
	FormatLongDate(date time.Time, locale string) string
	FormatMonthYear(date time.Time, locale string) string
	WeekdayShort(weekday time.Weekday, locale string) string
	Text(key string, locale string) string
}

// IDObserver генератор ID, которому сообщают уже занятые ID
type IDObserver interface {
	Observe(id int64)
}

// EventPublisher интерфейс публикации событий о записях
type EventPublisher interface {
	AppointmentBooked(ctx context.Context, a domain.Appointment) error
	AppointmentCancelled(ctx context.Context, a domain.Appointment) error
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	ObserveBooking(outcome string)
	ObserveCancellation(outcome string)
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

type nopEvents struct{}

func (nopEvents) AppointmentBooked(context.Context, domain.Appointment) error    { return nil }
func (nopEvents) AppointmentCancelled(context.Context, domain.Appointment) error { return nil }

type nopMetrics struct{}

func (nopMetrics) ObserveBooking(string)      {}
func (nopMetrics) ObserveCancellation(string) {}
