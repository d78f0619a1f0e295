package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/pkg/psqlbuilder"
)

const (
	tableName = "appointments"
	// Конфликтует сама с собой, но не с SELECT: Update и Save идут по очереди, чтение не блокируется
	lockQuery = "LOCK TABLE " + tableName + " IN SHARE ROW EXCLUSIVE MODE"
)

// DB интерфейс подключения к БД (*sql.DB)
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// PostgresStore хранит коллекцию в таблице appointments.
// Колонка position сохраняет порядок коллекции.
type PostgresStore struct {
	db     DB
	tracer trace.Tracer
}

// NewPostgresStore создает хранилище в Postgres
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{
		db:     db,
		tracer: otel.Tracer("booking_widget.storage.appointment.postgres"),
	}
}

// Load читает коллекцию в порядке сохранения.
// Строки с некорректной датой или временем пропускаются.
func (s *PostgresStore) Load(ctx context.Context) ([]domain.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.appointment.postgres.load")
	defer span.End()

	appointments, err := s.load(ctx, s.db, span)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return appointments, nil
}

// Save заменяет коллекцию целиком в одной транзакции
func (s *PostgresStore) Save(ctx context.Context, appointments []domain.Appointment) (err error) {
	ctx, span := s.tracer.Start(ctx, "storage.appointment.postgres.save",
		trace.WithAttributes(attribute.Int("appointments.count", len(appointments))))
	defer span.End()

	tx, err := s.begin(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer func() {
		if err != nil {
			span.RecordError(err)
			_ = tx.Rollback()
		}
	}()

	if err = s.replace(ctx, tx, appointments); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}
	return nil
}

// Update читает коллекцию, применяет mutate и сохраняет результат в одной транзакции
// под блокировкой таблицы. Ошибка mutate возвращается как есть, транзакция откатывается.
func (s *PostgresStore) Update(
	ctx context.Context,
	mutate func(current []domain.Appointment) ([]domain.Appointment, error),
) (next []domain.Appointment, err error) {
	ctx, span := s.tracer.Start(ctx, "storage.appointment.postgres.update")
	defer span.End()

	tx, err := s.begin(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer func() {
		if err != nil {
			span.RecordError(err)
			_ = tx.Rollback()
		}
	}()

	current, err := s.load(ctx, tx, span)
	if err != nil {
		return nil, err
	}

	next, err = mutate(current)
	if err != nil {
		return nil, err
	}

	if err = s.replace(ctx, tx, next); err != nil {
		return next, err
	}

	if err = tx.Commit(); err != nil {
		return next, fmt.Errorf("%w: Update - commit: %v", ErrTransaction, err)
	}

	span.SetAttributes(attribute.Int("appointments.count", len(next)))
	return next, nil
}

// begin открывает транзакцию и блокирует таблицу до ее конца
func (s *PostgresStore) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if _, err := tx.ExecContext(ctx, lockQuery); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("%w: lock %s: %v", ErrTransaction, tableName, err)
	}
	return tx, nil
}

func (s *PostgresStore) load(ctx context.Context, q queryer, span trace.Span) ([]domain.Appointment, error) {
	query, args, err := psqlbuilder.Select("id", "date", "time", "name", "phone").
		From(tableName).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	skipped := 0
	for rows.Next() {
		var r record
		if err := rows.Scan(&r.ID, &r.Date, &r.Time, &r.Name, &r.Phone); err != nil {
			return nil, fmt.Errorf("%w: Load: %v", ErrScanRow, err)
		}

		a, err := r.toDomain()
		if err != nil {
			span.RecordError(err)
			skipped++
			continue
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - iterate rows: %v", ErrScanRow, err)
	}

	span.SetAttributes(
		attribute.Int("appointments.count", len(appointments)),
		attribute.Int("appointments.skipped", skipped),
	)
	return appointments, nil
}

// replace удаляет все строки и вставляет коллекцию одним INSERT
func (s *PostgresStore) replace(ctx context.Context, tx *sql.Tx, appointments []domain.Appointment) error {
	deleteQuery, deleteArgs, err := psqlbuilder.Delete(tableName).ToSql()
	if err != nil {
		return fmt.Errorf("%w: build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: execute delete: %v", ErrExecQuery, err)
	}

	if len(appointments) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(tableName).
		Columns("id", "date", "time", "name", "phone", "position")
	for i, a := range appointments {
		r := toRecord(a)
		insert = insert.Values(r.ID, r.Date, r.Time, r.Name, r.Phone, i)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
