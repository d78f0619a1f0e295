package appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// Store общий контракт хранилищ коллекции
type Store interface {
	Load(ctx context.Context) ([]domain.Appointment, error)
	Save(ctx context.Context, appointments []domain.Appointment) error
	Update(
		ctx context.Context,
		mutate func(current []domain.Appointment) ([]domain.Appointment, error),
	) ([]domain.Appointment, error)
}

// StoreMetrics интерфейс метрик хранилища
type StoreMetrics interface {
	ObserveStoreOperation(operation string, err error, duration time.Duration)
}

// Операции хранилища для метрик
const (
	OperationLoad   = "load"
	OperationSave   = "save"
	OperationUpdate = "update"
)

// InstrumentedStore обертка над хранилищем, замеряющая длительность операций
type InstrumentedStore struct {
	next    Store
	metrics StoreMetrics
}

// NewInstrumentedStore оборачивает store метриками
func NewInstrumentedStore(next Store, metrics StoreMetrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: metrics}
}

func (s *InstrumentedStore) Load(ctx context.Context) ([]domain.Appointment, error) {
	start := time.Now()
	appointments, err := s.next.Load(ctx)
	s.metrics.ObserveStoreOperation(OperationLoad, err, time.Since(start))
	return appointments, err
}

func (s *InstrumentedStore) Save(ctx context.Context, appointments []domain.Appointment) error {
	start := time.Now()
	err := s.next.Save(ctx, appointments)
	s.metrics.ObserveStoreOperation(OperationSave, err, time.Since(start))
	return err
}

func (s *InstrumentedStore) Update(
	ctx context.Context,
	mutate func(current []domain.Appointment) ([]domain.Appointment, error),
) ([]domain.Appointment, error) {
	start := time.Now()
	appointments, err := s.next.Update(ctx, mutate)
	s.metrics.ObserveStoreOperation(OperationUpdate, err, time.Since(start))
	return appointments, err
}
