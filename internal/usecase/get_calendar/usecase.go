package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

// UseCase use case календаря: статусы дней месяца и ближайших дней
type UseCase struct {
	shop         *domain.ShopConfig
	availability AvailabilityService
	upcomingDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// upcomingDays - количество ближайших дней по умолчанию
func NewUseCase(shop *domain.ShopConfig, availability AvailabilityService, upcomingDays int, logger Logger) *UseCase {
	return &UseCase{
		shop:         shop,
		availability: availability,
		upcomingDays: upcomingDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Month возвращает статус каждого дня месяца
func (uc *UseCase) Month(ctx context.Context, req *MonthRequest) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateMonthRequest(req); err != nil {
		uc.logger.Warn("GetCalendar.Month: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetCalendar.Month: %04d-%02d", req.Year, req.Month)

	// 2. Статусы дней
	days, err := uc.availability.MonthSummary(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		uc.logger.Error("GetCalendar.Month: %04d-%02d: %v", req.Year, req.Month, err)
		return nil, err
	}

	return newResponse(days), nil
}

// Upcoming возвращает статус ближайших дней, начиная с сегодняшнего в зоне ресторана
func (uc *UseCase) Upcoming(ctx context.Context, req *UpcomingRequest) (*Response, error) {
	// 1. Валидация входных данных
	days, err := resolveDays(req, uc.upcomingDays)
	if err != nil {
		uc.logger.Warn("GetCalendar.Upcoming: validation failed: %v", err)
		return nil, err
	}

	// 2. Сегодняшний день в зоне ресторана
	today := uc.shop.StartOfDay(uc.timeProvider.Now())
	uc.logger.Info("GetCalendar.Upcoming: from=%s days=%d", today.Format(domain.DateFormat), days)

	// 3. Статусы дней
	summary, err := uc.availability.RangeSummary(ctx, today, days)
	if err != nil {
		uc.logger.Error("GetCalendar.Upcoming: from=%s: %v", today.Format(domain.DateFormat), err)
		return nil, err
	}

	return newResponse(summary), nil
}

func newResponse(days []domain.DaySummary) *Response {
	resp := &Response{Days: days}
	if len(days) > 0 {
		resp.From = days[0].Date
		resp.To = days[len(days)-1].Date
	}
	return resp
}
