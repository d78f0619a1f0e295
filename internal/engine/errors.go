package engine

import "errors"

var (
	// ErrValidation возвращается, когда имя или телефон пустые
	ErrValidation = errors.New("engine: name and phone are required")

	// ErrSlotNotAvailable возвращается, когда слот заняли до подтверждения
	ErrSlotNotAvailable = errors.New("engine: slot is not available")

	// ErrPersistence возвращается, когда коллекцию не удалось сохранить (изменение в памяти остается)
	ErrPersistence = errors.New("engine: failed to persist appointments")

	// ErrStoreUnavailable возвращается, когда хранилище не удалось прочитать (состояние не меняется)
	ErrStoreUnavailable = errors.New("engine: appointment store unavailable")

	// ErrInvalidInput возвращается, когда подтверждение вызвано без выбранных даты и слота
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("engine: internal error")
)

// Исходы операций для метрик
const (
	OutcomeSuccess       = "success"
	OutcomeInvalid       = "invalid"
	OutcomeSlotTaken     = "slot_taken"
	OutcomePersistFailed = "persist_failed"
	OutcomeDeclined      = "declined"
	OutcomeNotFound      = "not_found"
	OutcomeUnavailable   = "store_unavailable"
)
