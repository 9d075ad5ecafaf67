package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/service/calendar"
	"github.com/m04kA/table-reservation/pkg/logger"
	"github.com/m04kA/table-reservation/pkg/types"
)

type stubAvailability struct {
	day *domain.DayAvailability
	err error
}

func (s stubAvailability) Day(context.Context, time.Time) (*domain.DayAvailability, error) {
	return s.day, s.err
}

func TestExecute(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	shop := &domain.ShopConfig{SlotIntervalMinutes: 30}

	t.Run("open day", func(t *testing.T) {
		uc := NewUseCase(shop, stubAvailability{day: &domain.DayAvailability{
			Date:      date,
			OpenSlots: []types.TimeOfDay{types.MustTimeOfDay(17, 0), types.MustTimeOfDay(17, 30)},
		}}, logger.Nop())

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.Equal(t, domain.DayOpen, resp.Status)
		assert.Equal(t, 30, resp.DurationMinutes)
		assert.Len(t, resp.Slots, 2)
	})

	t.Run("closed day", func(t *testing.T) {
		uc := NewUseCase(shop, stubAvailability{day: &domain.DayAvailability{Date: date, IsClosed: true}}, logger.Nop())

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.True(t, resp.IsClosed)
		assert.Equal(t, domain.DayClosed, resp.Status)
		assert.Empty(t, resp.Slots)
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		uc := NewUseCase(shop, stubAvailability{err: calendar.ErrGatewayUnavailable}, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, calendar.ErrGatewayUnavailable)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := NewUseCase(shop, stubAvailability{}, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
