package get_shop_config

import (
	"github.com/m04kA/table-reservation/internal/domain"
)

// ShopConfigResponse HTTP response model
type ShopConfigResponse struct {
	Name                   string             `json:"name"`
	Timezone               string             `json:"timezone"`
	OpenTime               string             `json:"openTime"`
	CloseTime              string             `json:"closeTime"`
	SlotIntervalMinutes    int                `json:"slotIntervalMinutes"`
	MaxReservationsPerSlot int                `json:"maxReservationsPerSlot"`
	MaxPartySize           int                `json:"maxPartySize"`
	WeeklyOffDays          []string           `json:"weeklyOffDays"`
	SeatTypes              []SeatRuleResponse `json:"seatTypes"`
}

// SeatRuleResponse HTTP response model
type SeatRuleResponse struct {
	Name               string `json:"name"`
	MinParty           int    `json:"minParty"`
	MaxParty           int    `json:"maxParty"`
	TotalCapacityUnits int    `json:"totalCapacityUnits,omitempty"`
	OverflowFrom       int    `json:"overflowFromPartySize,omitempty"`
	OverflowUnits      int    `json:"overflowUnits,omitempty"`
}

// FromDomain конвертирует конфигурацию ресторана в HTTP response
func FromDomain(cfg *domain.ShopConfig) *ShopConfigResponse {
	offDays := make([]string, 0, len(cfg.WeeklyOffDays))
	for _, d := range cfg.WeeklyOffDays {
		offDays = append(offDays, d.String())
	}

	seats := make([]SeatRuleResponse, 0, len(cfg.SeatRules))
	for _, rule := range cfg.SeatRules {
		seat := SeatRuleResponse{
			Name:               string(rule.Type),
			MinParty:           rule.MinParty,
			MaxParty:           rule.MaxParty,
			TotalCapacityUnits: rule.TotalCapacityUnits,
		}
		if rule.Overflow.Enabled() {
			seat.OverflowFrom = rule.Overflow.FromPartySize
			seat.OverflowUnits = rule.Overflow.Units
		}
		seats = append(seats, seat)
	}

	return &ShopConfigResponse{
		Name:                   cfg.Name,
		Timezone:               cfg.Location.String(),
		OpenTime:               cfg.OpenTime.String(),
		CloseTime:              cfg.CloseTime.String(),
		SlotIntervalMinutes:    cfg.SlotIntervalMinutes,
		MaxReservationsPerSlot: cfg.MaxReservationsPerSlot,
		MaxPartySize:           cfg.MaxPartySize,
		WeeklyOffDays:          offDays,
		SeatTypes:              seats,
	}
}
