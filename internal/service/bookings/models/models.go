package models

import "github.com/m04kA/SMC-BookingWidget/internal/domain"

// CancelResult результат отмены записи
type CancelResult struct {
	Appointments []domain.Appointment // Актуальная коллекция из хранилища после удаления
	Removed      *domain.Appointment  // Удаленная запись, nil если ID не найден
}

// Found возвращает true, если запись с таким ID была в коллекции
func (r *CancelResult) Found() bool {
	return r.Removed != nil
}
