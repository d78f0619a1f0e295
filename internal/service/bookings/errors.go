package bookings

import "errors"

var (
	// ErrLoad возвращается, когда хранилище недоступно при загрузке
	ErrLoad = errors.New("bookings: failed to load appointments")

	// ErrPersistence возвращается, когда коллекцию не удалось сохранить
	ErrPersistence = errors.New("bookings: failed to persist appointments")
)
