package availability

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/schedule"
	"github.com/m04kA/table-reservation/pkg/types"
)

const (
	// MaxRangeDays максимальная длина диапазона для RangeSummary
	MaxRangeDays = 62

	minYear = 1
	maxYear = 9999
)

// Service вычисляет доступность дней и слотов
// Не хранит состояния между вызовами: каждый запрос заново читает занятость из gateway
type Service struct {
	shop        *domain.ShopConfig
	gateway     Gateway
	closedDays  ClosedDays
	maxParallel int
	logger      Logger
}

// NewService создает новый экземпляр сервиса
// maxParallel ограничивает число одновременных запросов к gateway при расчете месяца
func NewService(shop *domain.ShopConfig, gateway Gateway, closedDays ClosedDays, maxParallel int, logger Logger) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		shop:        shop,
		gateway:     gateway,
		closedDays:  closedDays,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// Day возвращает доступность одного дня
// Для закрытого дня gateway не вызывается. Дата вне таблицы праздников - domain.ErrDateNotCovered
func (s *Service) Day(ctx context.Context, date time.Time) (*domain.DayAvailability, error) {
	day := s.shop.StartOfDay(date)

	closed, err := s.closedDays.IsClosed(day)
	if err != nil {
		s.logger.Warn("Day: %s: %v", day.Format(domain.DateFormat), err)
		return nil, err
	}
	if closed {
		return &domain.DayAvailability{Date: day, IsClosed: true, OpenSlots: []types.TimeOfDay{}}, nil
	}

	counts, err := s.gateway.CountBookingsBySlot(ctx, day)
	if err != nil {
		return nil, err
	}

	all := schedule.GenerateSlots(day, s.shop)
	open := make([]types.TimeOfDay, 0, len(all))
	for _, slot := range all {
		if counts[slot] < s.shop.MaxReservationsPerSlot {
			open = append(open, slot)
		}
	}

	return &domain.DayAvailability{Date: day, OpenSlots: open}, nil
}

// AvailableSlots возвращает свободные слоты дня в хронологическом порядке
func (s *Service) AvailableSlots(ctx context.Context, date time.Time) ([]types.TimeOfDay, error) {
	day, err := s.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	return day.OpenSlots, nil
}

// MonthSummary возвращает статус каждого дня месяца
// Дни запрашиваются параллельно; первая ошибка отменяет остальные запросы
func (s *Service) MonthSummary(ctx context.Context, year int, month time.Month) ([]domain.DaySummary, error) {
	if year < minYear || year > maxYear || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %04d-%02d", ErrInvalidMonth, year, int(month))
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, s.shop.Location)
	// Последний день месяца
	count := first.AddDate(0, 1, -1).Day()

	return s.summarize(ctx, first, count)
}

// RangeSummary возвращает статус дней [from, from+days)
func (s *Service) RangeSummary(ctx context.Context, from time.Time, days int) ([]domain.DaySummary, error) {
	if days < 1 || days > MaxRangeDays {
		return nil, fmt.Errorf("%w: days=%d, allowed 1..%d", ErrInvalidRange, days, MaxRangeDays)
	}
	return s.summarize(ctx, s.shop.StartOfDay(from), days)
}

func (s *Service) summarize(ctx context.Context, first time.Time, count int) ([]domain.DaySummary, error) {
	result := make([]domain.DaySummary, count)

	// Закрытые дни определяются до обращений к gateway:
	// дата вне таблицы праздников отклоняет весь диапазон без сетевых запросов
	closed := make([]bool, count)
	for i := 0; i < count; i++ {
		date := first.AddDate(0, 0, i)
		isClosed, err := s.closedDays.IsClosed(date)
		if err != nil {
			s.logger.Warn("summarize: %s: %v", date.Format(domain.DateFormat), err)
			return nil, err
		}
		closed[i] = isClosed
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)

	for i := 0; i < count; i++ {
		date := first.AddDate(0, 0, i)

		if closed[i] {
			result[i] = domain.DaySummary{Date: date, Status: domain.DayClosed}
			continue
		}

		g.Go(func() error {
			day, err := s.Day(gctx, date)
			if err != nil {
				return err
			}
			result[i] = domain.DaySummary{Date: day.Date, Status: day.Status(), OpenSlots: len(day.OpenSlots)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("summarize: %s +%d days: %v", first.Format(domain.DateFormat), count, err)
		return nil, err
	}

	return result, nil
}
