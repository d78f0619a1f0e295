package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// UseCase use case для вычисления занятости слотов на выбранную дату
type UseCase struct {
	catalog domain.SlotCatalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog domain.SlotCatalog, logger Logger) *UseCase {
	if len(catalog) == 0 {
		catalog = domain.DefaultSlotCatalog()
	}
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog возвращает каталог слотов
func (uc *UseCase) Catalog() domain.SlotCatalog {
	return uc.catalog
}

// Execute выполняет use case вычисления занятости слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)

	// 2. Размечаем каталог по текущей коллекции записей
	slots := ComputeSlotAvailability(date, req.Appointments, uc.catalog)

	response := &Response{
		Date:  date,
		Slots: slots,
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, free=%d",
		date.Format(domain.DateFormat), len(slots), response.FreeCount())

	return response, nil
}
