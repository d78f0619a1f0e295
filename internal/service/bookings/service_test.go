package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/pkg/logger"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

type storeStub struct {
	loaded  []domain.Appointment
	loadErr error
	saveErr error
	saved   [][]domain.Appointment
}

func (s *storeStub) Load(context.Context) ([]domain.Appointment, error) {
	return s.loaded, s.loadErr
}

func (s *storeStub) Update(
	_ context.Context,
	mutate func(current []domain.Appointment) ([]domain.Appointment, error),
) ([]domain.Appointment, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	next, err := mutate(append([]domain.Appointment(nil), s.loaded...))
	if err != nil {
		return nil, err
	}
	s.saved = append(s.saved, next)
	if s.saveErr != nil {
		return next, s.saveErr
	}
	s.loaded = next
	return next, nil
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func appt(id int64, d int, slot string) domain.Appointment {
	return domain.Appointment{ID: id, Date: day(d), Time: types.TimeString(slot), ClientName: "c", ClientPhone: "p"}
}

func TestService_Load(t *testing.T) {
	t.Run("nil collection becomes empty", func(t *testing.T) {
		svc := NewService(&storeStub{}, logger.NewNop())
		got, err := svc.Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		svc := NewService(&storeStub{loadErr: errors.New("connection refused")}, logger.NewNop())
		got, err := svc.Load(context.Background())
		assert.ErrorIs(t, err, ErrLoad)
		assert.Empty(t, got)
	})

	t.Run("loaded", func(t *testing.T) {
		svc := NewService(&storeStub{loaded: []domain.Appointment{appt(1, 10, "09:00")}}, logger.NewNop())
		got, err := svc.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestService_Cancel(t *testing.T) {
	collection := func() []domain.Appointment {
		return []domain.Appointment{appt(1, 10, "09:00"), appt(2, 10, "09:30"), appt(3, 11, "09:00")}
	}

	t.Run("removes exactly the matching id", func(t *testing.T) {
		store := &storeStub{loaded: collection()}
		svc := NewService(store, logger.NewNop())

		result, err := svc.Cancel(context.Background(), 2)
		require.NoError(t, err)
		require.True(t, result.Found())
		assert.Equal(t, int64(2), result.Removed.ID)
		c := collection()
		assert.Equal(t, []domain.Appointment{c[0], c[2]}, result.Appointments)
		require.Len(t, store.saved, 1)
		assert.Equal(t, result.Appointments, store.saved[0])
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := &storeStub{loaded: collection()}
		svc := NewService(store, logger.NewNop())

		result, err := svc.Cancel(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, result.Found())
		assert.Equal(t, collection(), result.Appointments)
		assert.Empty(t, store.saved)
	})

	t.Run("works on the stored collection", func(t *testing.T) {
		// другая сессия добавила запись 4 после загрузки страницы
		store := &storeStub{loaded: append(collection(), appt(4, 12, "10:00"))}
		svc := NewService(store, logger.NewNop())

		result, err := svc.Cancel(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, result.Appointments, 3)
		assert.Equal(t, int64(4), result.Appointments[2].ID)
	})

	t.Run("save failure keeps the removal", func(t *testing.T) {
		store := &storeStub{loaded: collection(), saveErr: errors.New("quota exceeded")}
		svc := NewService(store, logger.NewNop())

		result, err := svc.Cancel(context.Background(), 1)
		assert.ErrorIs(t, err, ErrPersistence)
		require.NotNil(t, result)
		assert.Len(t, result.Appointments, 2)
		assert.True(t, result.Found())
	})

	t.Run("store unavailable", func(t *testing.T) {
		store := &storeStub{loadErr: errors.New("connection refused")}
		svc := NewService(store, logger.NewNop())

		result, err := svc.Cancel(context.Background(), 1)
		assert.ErrorIs(t, err, ErrLoad)
		assert.Nil(t, result)
	})
}

func TestSorted(t *testing.T) {
	collection := []domain.Appointment{
		appt(1, 12, "09:00"),
		appt(2, 10, "16:30"),
		appt(3, 10, "09:30"),
		appt(4, 11, "14:00"),
		appt(5, 10, "09:00"),
	}

	sorted := Sorted(collection)
	ids := make([]int64, 0, len(sorted))
	for _, a := range sorted {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{5, 3, 2, 4, 1}, ids)

	// канонический порядок не изменился
	assert.Equal(t, int64(1), collection[0].ID)
	assert.Equal(t, int64(5), collection[4].ID)

	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].StartsAt().Before(sorted[i-1].StartsAt()))
	}

	assert.Empty(t, Sorted(nil))
}
