package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// Request модель запроса на вычисление занятости слотов
type Request struct {
	Date         time.Time            // Выбранная дата (без времени)
	Appointments []domain.Appointment // Текущая коллекция записей
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date  time.Time                 // Дата, на которую вычислялись слоты
	Slots []domain.SlotAvailability // Слоты в порядке каталога
}

// FreeCount возвращает количество свободных слотов
func (r *Response) FreeCount() int {
	free := 0
	for i := range r.Slots {
		if r.Slots[i].IsSelectable() {
			free++
		}
	}
	return free
}

// Find возвращает слот по метке
func (r *Response) Find(slot string) (domain.SlotAvailability, bool) {
	for _, s := range r.Slots {
		if s.Time.String() == slot {
			return s, true
		}
	}
	return domain.SlotAvailability{}, false
}
