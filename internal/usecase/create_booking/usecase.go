package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// UseCase use case для подтверждения записи
type UseCase struct {
	store      AppointmentStore
	ids        IDGenerator
	catalog    domain.SlotCatalog
	revalidate bool
	validate   *validator.Validate
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// revalidate включает повторную проверку занятости слота перед созданием записи.
func NewUseCase(
	store AppointmentStore,
	ids IDGenerator,
	catalog domain.SlotCatalog,
	revalidate bool,
	logger Logger,
) *UseCase {
	if len(catalog) == 0 {
		catalog = domain.DefaultSlotCatalog()
	}
	return &UseCase{
		store:      store,
		ids:        ids,
		catalog:    catalog,
		revalidate: revalidate,
		validate:   newValidator(),
		logger:     logger,
	}
}

// Execute выполняет use case создания записи.
// Занятость слота проверяется по коллекции, прочитанной из хранилища в той же операции записи.
// При ErrPersistence ответ тоже возвращается: запись уже добавлена в коллекцию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	form, err := uc.validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	uc.logger.Info("CreateBooking: date=%s, time=%s", date.Format(domain.DateFormat), req.Time)

	// 2. Проверяем слот по актуальной коллекции, добавляем запись и сохраняем атомарно
	var (
		current     []domain.Appointment
		appointment domain.Appointment
	)
	appointments, err := uc.store.Update(ctx, func(stored []domain.Appointment) ([]domain.Appointment, error) {
		current = stored

		if uc.revalidate && isSlotTaken(stored, date, req.Time) {
			return nil, ErrSlotNotAvailable
		}

		appointment = domain.Appointment{
			ID:          uc.nextID(stored),
			Date:        date,
			Time:        req.Time,
			ClientName:  form.ClientName,
			ClientPhone: form.ClientPhone,
		}

		next := make([]domain.Appointment, 0, len(stored)+1)
		next = append(next, stored...)
		return append(next, appointment), nil
	})

	// 3. Обрабатываем результат
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		uc.logger.Warn("CreateBooking: slot %s %s is already taken", date.Format(domain.DateFormat), req.Time)
		return &Response{Appointments: current}, ErrSlotNotAvailable

	case err != nil && appointments == nil:
		uc.logger.Error("CreateBooking: failed to read appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	case err != nil:
		uc.logger.Error("CreateBooking: failed to save appointment id=%d: %v", appointment.ID, err)
		return &Response{Appointment: appointment, Appointments: appointments},
			fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.logger.Info("CreateBooking: appointment id=%d created, total=%d", appointment.ID, len(appointments))

	return &Response{
		Appointment:  appointment,
		Appointments: appointments,
	}, nil
}

// nextID выдает ID, которого еще нет в коллекции
func (uc *UseCase) nextID(appointments []domain.Appointment) int64 {
	id := uc.ids.Next()
	for hasID(appointments, id) {
		id = uc.ids.Next()
	}
	return id
}
