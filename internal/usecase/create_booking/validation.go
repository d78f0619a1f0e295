package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// newValidator создает валидатор формы с проверкой метки слота
func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation падает только на пустом имени тега
	_ = v.RegisterValidation("slot_label", validateSlotLabel)
	return v
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	return types.TimeString(fl.Field().String()).Validate() == nil
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) (*bookingForm, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	form := &bookingForm{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: strings.TrimSpace(req.ClientPhone),
		Time:        req.Time.String(),
	}

	if err := uc.validate.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		for _, fieldErr := range validationErrs {
			if fieldErr.Field() == "Time" {
				return nil, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, form.Time)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, fieldNames(validationErrs))
	}

	// Проверяем, что дата выбрана
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Слот должен быть из каталога
	if !uc.catalog.Contains(req.Time) {
		return nil, fmt.Errorf("%w: time %s is not in the slot catalog", ErrInvalidInput, req.Time)
	}

	return form, nil
}

// isSlotTaken проверяет, есть ли запись на ту же дату и время
func isSlotTaken(appointments []domain.Appointment, date time.Time, slot types.TimeString) bool {
	for i := range appointments {
		if appointments[i].Occupies(date, slot) {
			return true
		}
	}
	return false
}

func hasID(appointments []domain.Appointment, id int64) bool {
	for i := range appointments {
		if appointments[i].ID == id {
			return true
		}
	}
	return false
}

func fieldNames(errs validator.ValidationErrors) string {
	names := make([]string, 0, len(errs))
	for _, err := range errs {
		names = append(names, err.Field())
	}
	return strings.Join(names, ", ")
}
