package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// DefaultRedisKey ключ, под которым хранится коллекция
const DefaultRedisKey = "appointments"

// maxUpdateAttempts сколько раз Update повторяет транзакцию после конфликта WATCH
const maxUpdateAttempts = 5

// RedisStore хранит коллекцию JSON массивом под одним ключом
type RedisStore struct {
	client redis.UniversalClient
	key    string
	tracer trace.Tracer
}

type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewRedisStore создает хранилище в Redis
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{
		client: client,
		key:    key,
		tracer: otel.Tracer("booking_widget.storage.appointment.redis"),
	}
}

// Load читает коллекцию. Отсутствующий ключ или поврежденный JSON дают пустую коллекцию,
// отдельные некорректные записи пропускаются.
func (s *RedisStore) Load(ctx context.Context) ([]domain.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.appointment.redis.load",
		trace.WithAttributes(attribute.String("redis.key", s.key)))
	defer span.End()

	appointments, err := s.read(ctx, s.client, span)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrExecQuery, s.key, err)
	}

	span.SetAttributes(attribute.Int("appointments.count", len(appointments)))
	return appointments, nil
}

// Save заменяет коллекцию целиком
func (s *RedisStore) Save(ctx context.Context, appointments []domain.Appointment) error {
	ctx, span := s.tracer.Start(ctx, "storage.appointment.redis.save",
		trace.WithAttributes(
			attribute.String("redis.key", s.key),
			attribute.Int("appointments.count", len(appointments)),
		))
	defer span.End()

	data, err := encodeCollection(appointments)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: Save - set %s: %v", ErrExecQuery, s.key, err)
	}

	return nil
}

// Update читает коллекцию под WATCH, применяет mutate и записывает результат в MULTI/EXEC.
// Если ключ изменили параллельно, транзакция повторяется с новыми данными.
// Ошибка mutate возвращается как есть, коллекция не меняется.
func (s *RedisStore) Update(
	ctx context.Context,
	mutate func(current []domain.Appointment) ([]domain.Appointment, error),
) ([]domain.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.appointment.redis.update",
		trace.WithAttributes(attribute.String("redis.key", s.key)))
	defer span.End()

	var (
		next      []domain.Appointment
		mutateErr error
		readErr   error
	)
	txf := func(tx *redis.Tx) error {
		current, err := s.read(ctx, tx, span)
		if err != nil {
			readErr = err
			return err
		}

		next, mutateErr = mutate(current)
		if mutateErr != nil {
			return mutateErr
		}

		data, err := encodeCollection(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		next, mutateErr, readErr = nil, nil, nil

		err := s.client.Watch(ctx, txf, s.key)
		switch {
		case err == nil:
			span.SetAttributes(
				attribute.Int("appointments.count", len(next)),
				attribute.Int("redis.attempts", attempt),
			)
			return next, nil
		case mutateErr != nil:
			return nil, mutateErr
		case errors.Is(err, redis.TxFailedErr):
			continue
		case readErr != nil:
			span.RecordError(err)
			return nil, fmt.Errorf("%w: Update - get %s: %v", ErrExecQuery, s.key, err)
		default:
			span.RecordError(err)
			return next, fmt.Errorf("%w: Update - set %s: %v", ErrExecQuery, s.key, err)
		}
	}

	err := fmt.Errorf("%w: Update - %s changed during %d attempts", ErrConflict, s.key, maxUpdateAttempts)
	span.RecordError(err)
	return nil, err
}

func (s *RedisStore) read(ctx context.Context, client redisGetter, span trace.Span) ([]domain.Appointment, error) {
	data, err := client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Appointment{}, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	appointments, skipped, err := decodeCollection(data)
	if err != nil {
		span.RecordError(err)
		return []domain.Appointment{}, nil
	}
	for _, invalid := range skipped {
		span.RecordError(invalid)
	}
	span.SetAttributes(attribute.Int("appointments.skipped", len(skipped)))
	return appointments, nil
}
