// Package schedule календарные правила ресторана: рабочие дни и сетка слотов дня.
package schedule

import (
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/types"
)

// GenerateSlots возвращает начала всех слотов дня: openTime + k*interval, пока начало строго раньше closeTime
// Слот может закончиться после закрытия, но не может начаться в момент закрытия
// Результат зависит только от конфигурации, дата принимается для единообразия с правилами дня
func GenerateSlots(_ time.Time, cfg *domain.ShopConfig) []types.TimeOfDay {
	if cfg.SlotIntervalMinutes <= 0 || !cfg.OpenTime.IsBefore(cfg.CloseTime) {
		return []types.TimeOfDay{}
	}

	count := (cfg.CloseTime.Minutes()-cfg.OpenTime.Minutes()-1)/cfg.SlotIntervalMinutes + 1
	slots := make([]types.TimeOfDay, 0, count)

	for t := cfg.OpenTime; t.IsBefore(cfg.CloseTime); t += types.TimeOfDay(cfg.SlotIntervalMinutes) {
		slots = append(slots, t)
	}

	return slots
}

// IsSlotOnGrid проверяет, что t совпадает с началом одного из слотов
func IsSlotOnGrid(t types.TimeOfDay, cfg *domain.ShopConfig) bool {
	if cfg.SlotIntervalMinutes <= 0 || t.IsBefore(cfg.OpenTime) || !t.IsBefore(cfg.CloseTime) {
		return false
	}
	return (t.Minutes()-cfg.OpenTime.Minutes())%cfg.SlotIntervalMinutes == 0
}
