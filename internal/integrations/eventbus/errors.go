package eventbus

import "errors"

var (
	// ErrInvalidConfig возвращается, когда не указаны брокеры или топик
	ErrInvalidConfig = errors.New("eventbus: invalid configuration")

	// ErrPublish возвращается при ошибке записи в Kafka
	ErrPublish = errors.New("eventbus: failed to publish event")

	// ErrClosed возвращается при публикации после Close
	ErrClosed = errors.New("eventbus: publisher is closed")
)
