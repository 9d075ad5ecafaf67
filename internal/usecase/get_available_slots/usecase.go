package get_available_slots

import (
	"context"

	"github.com/m04kA/table-reservation/internal/domain"
)

// UseCase use case для получения доступных слотов дня
type UseCase struct {
	shop         *domain.ShopConfig
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shop *domain.ShopConfig, availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		shop:         shop,
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Ошибки календаря возвращаются без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Рассчитываем доступность дня
	day, err := uc.availability.Day(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	return &Response{
		Date:            day.Date,
		Status:          day.Status(),
		IsClosed:        day.IsClosed,
		DurationMinutes: uc.shop.SlotIntervalMinutes,
		Slots:           day.OpenSlots,
	}, nil
}
