package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/internal/service/bookings/models"
)

// Service сервис для работы с коллекцией записей
type Service struct {
	store  AppointmentStore
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store AppointmentStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Load загружает коллекцию записей.
// При ошибке хранилища возвращает пустую коллекцию вместе с ошибкой.
func (s *Service) Load(ctx context.Context) ([]domain.Appointment, error) {
	appointments, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Load: store error: %v", err)
		return []domain.Appointment{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	if appointments == nil {
		appointments = []domain.Appointment{}
	}

	s.logger.Info("Load: loaded %d appointments", len(appointments))
	return appointments, nil
}

// errNotFound прерывает Update без записи, когда ID нет в коллекции
var errNotFound = errors.New("bookings: appointment not found")

// Cancel удаляет запись с указанным ID из актуальной коллекции хранилища и сохраняет ее.
// Неизвестный ID не является ошибкой: возвращается актуальная коллекция, запись не выполняется.
// При ErrPersistence результат тоже возвращается; при ErrLoad результата нет.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.CancelResult, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	var (
		current []domain.Appointment
		removed *domain.Appointment
	)
	appointments, err := s.store.Update(ctx, func(stored []domain.Appointment) ([]domain.Appointment, error) {
		current = stored
		removed = nil

		next := make([]domain.Appointment, 0, len(stored))
		for i := range stored {
			if stored[i].ID == id && removed == nil {
				a := stored[i]
				removed = &a
				continue
			}
			next = append(next, stored[i])
		}
		if removed == nil {
			return nil, errNotFound
		}
		return next, nil
	})

	switch {
	case errors.Is(err, errNotFound):
		s.logger.Warn("Cancel: appointment id=%d not found", id)
		return &models.CancelResult{Appointments: current}, nil

	case err != nil && appointments == nil:
		s.logger.Error("Cancel: failed to read appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)

	case err != nil:
		s.logger.Error("Cancel: failed to save after removing id=%d: %v", id, err)
		return &models.CancelResult{Appointments: appointments, Removed: removed},
			fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled, remaining=%d", id, len(appointments))
	return &models.CancelResult{Appointments: appointments, Removed: removed}, nil
}

// Sorted возвращает новую коллекцию, отсортированную по дате и времени.
// Исходный порядок не изменяется.
func Sorted(appointments []domain.Appointment) []domain.Appointment {
	sorted := make([]domain.Appointment, len(appointments))
	copy(sorted, appointments)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := domain.DateOf(sorted[i].Date), domain.DateOf(sorted[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].Time.IsBefore(sorted[j].Time)
	})

	return sorted
}
