package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/slotlock"
	"github.com/m04kA/table-reservation/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	shop         *domain.ShopConfig
	availability AvailabilityService
	gateway      CalendarGateway
	serializer   SlotSerializer
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shop *domain.ShopConfig,
	availability AvailabilityService,
	gateway CalendarGateway,
	serializer SlotSerializer,
	logger Logger,
) *UseCase {
	return &UseCase{
		shop:         shop,
		availability: availability,
		gateway:      gateway,
		serializer:   serializer,
		metrics:      noopMetrics{},
		logger:       logger,
	}
}

// WithMetrics подключает счетчики результатов
func (uc *UseCase) WithMetrics(metrics Metrics) *UseCase {
	uc.metrics = metrics
	return uc
}

// Execute выполняет use case создания бронирования
// Правила проверяются по порядку, возвращается первое нарушение
// Ошибки календаря (calendar.ErrGatewayUnavailable, calendar.ErrGatewayRejected) возвращаются без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, slot=%s, seat=%s",
		req.Date.Format(domain.DateFormat), formatSlot(req.Slot), req.SeatType)

	// 1. Обязательные поля
	if err := validateRequired(req); err != nil {
		return nil, uc.reject(err)
	}
	partySize := *req.PartySize
	slot := *req.Slot
	seatType := domain.SeatType(strings.ToLower(strings.TrimSpace(req.SeatType)))

	// 2. Общий лимит гостей
	if err := validatePartySize(partySize, uc.shop); err != nil {
		return nil, uc.reject(err)
	}

	// 3. Ограничения типа места
	rule, err := validateSeat(seatType, partySize, uc.shop)
	if err != nil {
		return nil, uc.reject(err)
	}

	// 4. Единицы вместимости (только пометка в событии)
	details := domain.ReservationDetails{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		PartySize:     partySize,
		SeatType:      seatType,
		CapacityUnits: rule.UnitsFor(partySize),
		Notes:         req.Notes,
	}

	date := uc.shop.StartOfDay(req.Date)
	key := fmt.Sprintf("%s/%s", date.Format(domain.DateFormat), slot)

	var booked *domain.BookedEvent

	// 5. Повторная проверка слота и запись под блокировкой слота
	err = uc.serializer.DoSerialized(ctx, key, func(lockCtx context.Context) error {
		// 5.1. Слот должен быть среди свободных на момент записи
		open, err := uc.availability.AvailableSlots(lockCtx, date)
		if err != nil {
			return err
		}
		if !containsSlot(open, slot) {
			return newValidationError(ErrSlotUnavailable, "slot %s on %s is not available",
				slot, date.Format(domain.DateFormat))
		}

		// 5.2. Записываем событие
		booked, err = uc.gateway.CommitBooking(lockCtx, date, slot, details)
		return err
	})
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return nil, uc.reject(err)
		}
		if errors.Is(err, slotlock.ErrLockTimeout) || errors.Is(err, slotlock.ErrLockUnavailable) {
			uc.logger.Error("CreateReservation: failed to lock slot %s: %v", key, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotBusy, err)
		}
		uc.logger.Error("CreateReservation: slot %s: %v", key, err)
		return nil, err
	}

	uc.metrics.IncReservationCommitted(string(seatType))
	uc.logger.Info("CreateReservation: event id=%s created for %s (party=%d, seat=%s, units=%d)",
		booked.ID, key, booked.PartySize, booked.SeatType, booked.CapacityUnits)

	return &Response{
		EventID:       booked.ID,
		Date:          booked.Date,
		Slot:          booked.Slot,
		Start:         booked.Start,
		End:           booked.End,
		CustomerName:  booked.CustomerName,
		PartySize:     booked.PartySize,
		SeatType:      string(booked.SeatType),
		CapacityUnits: booked.CapacityUnits,
		LargeParty:    booked.ConsumesMultipleUnits(),
		Notes:         booked.Notes,
	}, nil
}

func (uc *UseCase) reject(err error) error {
	uc.metrics.IncReservationRejected(RuleName(err))
	uc.logger.Warn("CreateReservation: validation failed: %v", err)
	return err
}

func containsSlot(slots []types.TimeOfDay, slot types.TimeOfDay) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func formatSlot(slot *types.TimeOfDay) string {
	if slot == nil {
		return "-"
	}
	return slot.String()
}
