package create_booking

import "errors"

var (
	// ErrValidation возвращается, когда имя или телефон клиента пустые
	ErrValidation = errors.New("create_booking: name and phone are required")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другой записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных (нет даты, слот вне каталога)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPersistence возвращается, когда коллекцию не удалось сохранить.
	// Запись при этом остается в ответе: откат в памяти не выполняется.
	ErrPersistence = errors.New("create_booking: failed to persist appointments")

	// ErrStoreUnavailable возвращается, когда актуальную коллекцию не удалось прочитать.
	// Запись не создается.
	ErrStoreUnavailable = errors.New("create_booking: appointment store unavailable")
)
