package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ""), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, store.Save(ctx, sample()))
	assert.True(t, mr.Exists(DefaultRedisKey))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), loaded)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set(DefaultRedisKey, "{oops"))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisStore_LegacyPayload(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set(DefaultRedisKey, `[{"id":1,"date":"Mon Mar 10 2025","time":"09:00","name":"Ana","phone":"555-1111"}]`))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Ana", loaded[0].ClientName)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)

	err = store.Save(context.Background(), sample())
	assert.ErrorIs(t, err, ErrExecQuery)

	_, err = store.Update(context.Background(), func(current []domain.Appointment) ([]domain.Appointment, error) {
		return current, nil
	})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRedisStore_KeepsValidRecords(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set(DefaultRedisKey, `[
		{"id":1,"date":"2025-03-10","time":"09:00","name":"Ana","phone":"555-1111"},
		{"id":2,"date":"2025-03-10","time":"9:30","name":"Bad","phone":"0"}
	]`))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Ana", loaded[0].ClientName)
}

func TestRedisStore_Update(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)
	require.NoError(t, store.Save(ctx, sample()[:1]))

	next, err := store.Update(ctx, func(current []domain.Appointment) ([]domain.Appointment, error) {
		require.Len(t, current, 1)
		return append(current, sample()[1]), nil
	})
	require.NoError(t, err)
	assert.Equal(t, sample(), next)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), loaded)

	rejected := errors.New("rejected")
	_, err = store.Update(ctx, func([]domain.Appointment) ([]domain.Appointment, error) {
		return nil, rejected
	})
	assert.ErrorIs(t, err, rejected)

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), loaded)
}

func TestRedisStore_UpdateRetriesOnConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	otherClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = otherClient.Close() })
	other := NewRedisStore(otherClient, "")

	calls := 0
	next, err := store.Update(ctx, func(current []domain.Appointment) ([]domain.Appointment, error) {
		calls++
		if calls == 1 {
			// другая сессия успевает записать между WATCH и EXEC
			require.NoError(t, other.Save(ctx, sample()[:1]))
		}
		return append(current, sample()[1]), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, sample(), next)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), loaded)
}
