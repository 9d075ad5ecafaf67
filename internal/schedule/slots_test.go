package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/types"
)

var jst = time.FixedZone("JST", 9*60*60)

func shopConfig(openAt, closeAt types.TimeOfDay, interval int) *domain.ShopConfig {
	return &domain.ShopConfig{
		Location:               jst,
		OpenTime:               openAt,
		CloseTime:              closeAt,
		SlotIntervalMinutes:    interval,
		MaxReservationsPerSlot: 2,
		WeeklyOffDays:          []time.Weekday{time.Sunday},
	}
}

func formatSlots(slots []types.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateSlots_EveningService(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 30)

	slots := GenerateSlots(time.Date(2026, 3, 3, 0, 0, 0, 0, jst), cfg)

	assert.Equal(t, []string{
		"17:00", "17:30", "18:00", "18:30", "19:00",
		"19:30", "20:00", "20:30", "21:00", "21:30",
	}, formatSlots(slots))
}

func TestGenerateSlots_SequenceShape(t *testing.T) {
	tests := []struct {
		name     string
		open     types.TimeOfDay
		close    types.TimeOfDay
		interval int
	}{
		{name: "aligned close", open: types.MustTimeOfDay(11, 0), close: types.MustTimeOfDay(14, 0), interval: 30},
		{name: "unaligned close", open: types.MustTimeOfDay(17, 0), close: types.MustTimeOfDay(21, 50), interval: 45},
		{name: "interval longer than window", open: types.MustTimeOfDay(17, 0), close: types.MustTimeOfDay(17, 20), interval: 60},
		{name: "fine grid", open: types.MustTimeOfDay(6, 5), close: types.MustTimeOfDay(23, 55), interval: 5},
		{name: "close at last minute", open: types.MustTimeOfDay(0, 0), close: types.MustTimeOfDay(23, 59), interval: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := shopConfig(tt.open, tt.close, tt.interval)

			slots := GenerateSlots(time.Time{}, cfg)

			require.NotEmpty(t, slots)
			assert.Equal(t, tt.open, slots[0])
			assert.True(t, slots[len(slots)-1].IsBefore(tt.close))
			for i := 1; i < len(slots); i++ {
				assert.Equal(t, tt.interval, slots[i].Minutes()-slots[i-1].Minutes())
			}
			next := slots[len(slots)-1].Minutes() + tt.interval
			assert.GreaterOrEqual(t, next, tt.close.Minutes())
			for _, s := range slots {
				assert.True(t, IsSlotOnGrid(s, cfg))
			}
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 30)

	assert.Equal(t, GenerateSlots(time.Time{}, cfg), GenerateSlots(time.Time{}, cfg))
}

func TestGenerateSlots_InvalidWindow(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(22, 0), types.MustTimeOfDay(17, 0), 30)
	assert.Empty(t, GenerateSlots(time.Time{}, cfg))

	cfg = shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 0)
	assert.Empty(t, GenerateSlots(time.Time{}, cfg))
}

func TestIsSlotOnGrid(t *testing.T) {
	cfg := shopConfig(types.MustTimeOfDay(17, 0), types.MustTimeOfDay(22, 0), 30)

	assert.True(t, IsSlotOnGrid(types.MustTimeOfDay(17, 0), cfg))
	assert.True(t, IsSlotOnGrid(types.MustTimeOfDay(21, 30), cfg))
	assert.False(t, IsSlotOnGrid(types.MustTimeOfDay(22, 0), cfg))
	assert.False(t, IsSlotOnGrid(types.MustTimeOfDay(17, 15), cfg))
	assert.False(t, IsSlotOnGrid(types.MustTimeOfDay(16, 30), cfg))
}
