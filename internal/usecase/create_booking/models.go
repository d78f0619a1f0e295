package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date        time.Time        // Выбранная дата (без времени)
	Time        types.TimeString // Выбранный слот, например "09:00"
	ClientName  string           // Имя клиента как введено в форму
	ClientPhone string           // Телефон клиента как введен в форму
}

// Response модель ответа с созданной записью.
// При ErrSlotNotAvailable заполнена только Appointments: актуальная коллекция из хранилища.
type Response struct {
	Appointment  domain.Appointment   // Созданная запись
	Appointments []domain.Appointment // Актуальная коллекция из хранилища + созданная запись в конце
}

// bookingForm поля формы после обрезки пробелов
type bookingForm struct {
	ClientName  string `validate:"required"`
	ClientPhone string `validate:"required"`
	Time        string `validate:"required,slot_label"`
}
