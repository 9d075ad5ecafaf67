package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/types"
)

const (
	opListEvents  = "list_events"
	opInsertEvent = "insert_event"

	resultOK          = "ok"
	resultUnavailable = "unavailable"
	resultRejected    = "rejected"
)

// Gateway читает занятость слотов и записывает новые бронирования во внешний календарь
// Существующие события никогда не изменяются и не удаляются
type Gateway struct {
	store   EventStore
	shop    *domain.ShopConfig
	timeout time.Duration
	metrics Metrics
	logger  Logger
}

// NewGateway создает gateway; timeout ограничивает каждый отдельный вызов хранилища
func NewGateway(store EventStore, shop *domain.ShopConfig, timeout time.Duration, logger Logger) *Gateway {
	return &Gateway{
		store:   store,
		shop:    shop,
		timeout: timeout,
		metrics: noopMetrics{},
		logger:  logger,
	}
}

// WithMetrics подключает сбор метрик вызовов хранилища
func (g *Gateway) WithMetrics(metrics Metrics) *Gateway {
	g.metrics = metrics
	return g
}

// CountBookingsBySlot возвращает количество событий, начинающихся в каждом слоте дня
// Окно запроса - весь день [00:00, 00:00 следующего дня) в зоне ресторана
// Любая ошибка хранилища - ErrGatewayUnavailable: отсутствие данных не равно отсутствию бронирований
func (g *Gateway) CountBookingsBySlot(ctx context.Context, date time.Time) (map[types.TimeOfDay]int, error) {
	dayStart := g.shop.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	events, err := g.store.ListEvents(callCtx, dayStart, dayEnd)
	if err != nil {
		g.metrics.ObserveGatewayCall(opListEvents, resultUnavailable, time.Since(started))
		g.logger.Error("CountBookingsBySlot: failed to list events for %s: %v", dayStart.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: list events for %s: %v", ErrGatewayUnavailable, dayStart.Format(domain.DateFormat), err)
	}
	g.metrics.ObserveGatewayCall(opListEvents, resultOK, time.Since(started))

	counts := make(map[types.TimeOfDay]int, len(events))
	for _, ev := range events {
		start := ev.Start.In(g.shop.Location)
		// Хранилище возвращает события, пересекающие окно; считаем только начавшиеся в этот день
		if start.Before(dayStart) || !start.Before(dayEnd) {
			continue
		}
		counts[types.TimeOfDayFromTime(start)]++
	}

	return counts, nil
}

// CommitBooking записывает одно событие [slot, slot+interval) в зоне ресторана
func (g *Gateway) CommitBooking(
	ctx context.Context,
	date time.Time,
	slot types.TimeOfDay,
	details domain.ReservationDetails,
) (*domain.BookedEvent, error) {
	dayStart := g.shop.StartOfDay(date)
	start := slot.On(dayStart)
	end := start.Add(g.shop.SlotInterval())

	event := domain.CalendarEvent{
		Summary:     g.shop.EventSummary,
		Description: FormatDescription(details),
		Start:       start,
		End:         end,
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	id, err := g.store.InsertEvent(callCtx, event)
	if err != nil {
		if errors.Is(err, domain.ErrEventStoreRejected) {
			g.metrics.ObserveGatewayCall(opInsertEvent, resultRejected, time.Since(started))
			g.logger.Error("CommitBooking: event store rejected event at %s: %v", start.Format(domain.DateTimeFormat), err)
			return nil, fmt.Errorf("%w: insert event at %s: %v", ErrGatewayRejected, start.Format(domain.DateTimeFormat), err)
		}
		g.metrics.ObserveGatewayCall(opInsertEvent, resultUnavailable, time.Since(started))
		g.logger.Error("CommitBooking: failed to insert event at %s: %v", start.Format(domain.DateTimeFormat), err)
		return nil, fmt.Errorf("%w: insert event at %s: %v", ErrGatewayUnavailable, start.Format(domain.DateTimeFormat), err)
	}
	g.metrics.ObserveGatewayCall(opInsertEvent, resultOK, time.Since(started))

	g.logger.Info("CommitBooking: event id=%s committed at %s (seat=%s, party=%d, units=%d)",
		id, start.Format(domain.DateTimeFormat), details.SeatType, details.PartySize, details.CapacityUnits)

	return &domain.BookedEvent{
		ID:            id,
		Date:          dayStart,
		Slot:          slot,
		Start:         start,
		End:           end,
		CustomerName:  details.CustomerName,
		PartySize:     details.PartySize,
		SeatType:      details.SeatType,
		CapacityUnits: details.CapacityUnits,
		Notes:         details.Notes,
	}, nil
}
