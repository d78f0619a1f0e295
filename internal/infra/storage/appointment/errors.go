package appointment

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("appointment.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.storage: failed to scan row")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("appointment.storage: transaction error")

	// ErrEncode возвращается, когда коллекцию не удалось сериализовать
	ErrEncode = errors.New("appointment.storage: failed to encode appointments")

	// ErrInvalidRecord возвращается для записи с некорректной датой или временем
	ErrInvalidRecord = errors.New("appointment.storage: invalid record")

	// ErrConflict возвращается, когда коллекцию постоянно меняют параллельно и Update не смог ее записать
	ErrConflict = errors.New("appointment.storage: concurrent modification")
)
