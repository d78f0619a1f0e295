package appointment

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// MemoryStore хранилище в памяти процесса.
// Коллекция хранится сериализованной, как в key-value хранилище браузера.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load возвращает сохраненную коллекцию; пустую, если данных нет или JSON поврежден.
// Отдельные некорректные записи пропускаются.
func (s *MemoryStore) Load(_ context.Context) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decodeLocked(), nil
}

// Save заменяет коллекцию целиком
func (s *MemoryStore) Save(_ context.Context, appointments []domain.Appointment) error {
	data, err := encodeCollection(appointments)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Update читает коллекцию, применяет mutate и сохраняет результат под одной блокировкой.
// Ошибка mutate возвращается как есть, коллекция не меняется.
func (s *MemoryStore) Update(
	_ context.Context,
	mutate func(current []domain.Appointment) ([]domain.Appointment, error),
) ([]domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := mutate(s.decodeLocked())
	if err != nil {
		return nil, err
	}

	data, err := encodeCollection(next)
	if err != nil {
		return next, err
	}
	s.data = data
	return next, nil
}

// Raw возвращает сохраненный JSON
func (s *MemoryStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.data...)
}

// SetRaw подменяет сохраненный JSON (импорт данных старого виджета)
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	s.data = append([]byte(nil), data...)
	s.mu.Unlock()
}

func (s *MemoryStore) decodeLocked() []domain.Appointment {
	if len(s.data) == 0 {
		return []domain.Appointment{}
	}
	appointments, _, err := decodeCollection(s.data)
	if err != nil {
		return []domain.Appointment{}
	}
	return appointments
}
