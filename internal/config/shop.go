package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/types"
)

// ErrInvalidShopConfig возвращается при отсутствующем или некорректном файле правил ресторана
// Ошибка фатальна: сервис не стартует с частично загруженными правилами
var ErrInvalidShopConfig = errors.New("config: invalid shop configuration")

type shopFile struct {
	Name                   string         `toml:"name" yaml:"name" json:"name"`
	Timezone               string         `toml:"timezone" yaml:"timezone" json:"timezone"`
	OpenTime               string         `toml:"open_time" yaml:"open_time" json:"openTime"`
	CloseTime              string         `toml:"close_time" yaml:"close_time" json:"closeTime"`
	SlotIntervalMinutes    *int           `toml:"slot_interval_minutes" yaml:"slot_interval_minutes" json:"slotIntervalMinutes"`
	MaxReservationsPerSlot *int           `toml:"max_reservations_per_slot" yaml:"max_reservations_per_slot" json:"maxReservationsPerSlot"`
	MaxPartySize           *int           `toml:"max_party_size" yaml:"max_party_size" json:"maxPartySize"`
	WeeklyOffDays          []string       `toml:"weekly_off_days" yaml:"weekly_off_days" json:"weeklyOffDays"`
	EventSummary           string         `toml:"event_summary" yaml:"event_summary" json:"eventSummary"`
	SeatTypes              []seatTypeFile `toml:"seat_types" yaml:"seat_types" json:"seatTypes"`

	// Ключ из первой версии shop-config.json
	LegacyMaxReservationPerSlot *int `toml:"-" yaml:"-" json:"maxReservationPerSlot"`
}

type seatTypeFile struct {
	Name              string `toml:"name" yaml:"name" json:"name"`
	MinParty          int    `toml:"min_party" yaml:"min_party" json:"minParty"`
	MaxParty          int    `toml:"max_party" yaml:"max_party" json:"maxParty"`
	CapacityUnits     int    `toml:"capacity_units" yaml:"capacity_units" json:"totalCapacityUnits"`
	OverflowFromParty int    `toml:"overflow_from_party" yaml:"overflow_from_party" json:"overflowFromParty"`
	OverflowUnits     int    `toml:"overflow_units" yaml:"overflow_units" json:"overflowUnits"`
}

// LoadShop читает правила ресторана из TOML, YAML или JSON (по расширению файла)
func LoadShop(path string) (*domain.ShopConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidShopConfig, path, err)
	}

	var file shopFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidShopConfig, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidShopConfig, path, err)
	}

	return file.toDomain()
}

func (f *shopFile) toDomain() (*domain.ShopConfig, error) {
	cfg := &domain.ShopConfig{
		Name:                   f.Name,
		SlotIntervalMinutes:    intOr(f.SlotIntervalMinutes, domain.DefaultSlotIntervalMinutes),
		MaxReservationsPerSlot: intOr(f.MaxReservationsPerSlot, intOr(f.LegacyMaxReservationPerSlot, domain.DefaultMaxReservationsPerSlot)),
		MaxPartySize:           intOr(f.MaxPartySize, domain.DefaultMaxPartySize),
		EventSummary:           f.EventSummary,
	}

	timezone := f.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidShopConfig, timezone, err)
	}
	cfg.Location = loc

	if f.OpenTime == "" || f.CloseTime == "" {
		return nil, fmt.Errorf("%w: open_time and close_time are required", ErrInvalidShopConfig)
	}
	if cfg.OpenTime, err = types.ParseTimeOfDay(f.OpenTime); err != nil {
		return nil, fmt.Errorf("%w: open_time: %v", ErrInvalidShopConfig, err)
	}
	if cfg.CloseTime, err = types.ParseTimeOfDay(f.CloseTime); err != nil {
		return nil, fmt.Errorf("%w: close_time: %v", ErrInvalidShopConfig, err)
	}
	if !cfg.OpenTime.IsBefore(cfg.CloseTime) {
		return nil, fmt.Errorf("%w: open_time %s must be before close_time %s",
			ErrInvalidShopConfig, cfg.OpenTime, cfg.CloseTime)
	}

	if cfg.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || cfg.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return nil, fmt.Errorf("%w: slot_interval_minutes must be between %d and %d",
			ErrInvalidShopConfig, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}
	if cfg.MaxReservationsPerSlot < 1 || cfg.MaxReservationsPerSlot > domain.MaxReservationsPerSlot {
		return nil, fmt.Errorf("%w: max_reservations_per_slot must be between 1 and %d",
			ErrInvalidShopConfig, domain.MaxReservationsPerSlot)
	}
	if cfg.MaxPartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: max_party_size must be positive", ErrInvalidShopConfig)
	}

	if cfg.WeeklyOffDays, err = parseWeekdays(f.WeeklyOffDays); err != nil {
		return nil, err
	}

	if cfg.SeatRules, err = f.seatRules(cfg.MaxPartySize); err != nil {
		return nil, err
	}

	if cfg.EventSummary == "" {
		cfg.EventSummary = "Reservation"
		if cfg.Name != "" {
			cfg.EventSummary = cfg.Name + " 予約"
		}
	}

	return cfg, nil
}

func (f *shopFile) seatRules(maxPartySize int) ([]domain.SeatRule, error) {
	if len(f.SeatTypes) == 0 {
		return DefaultSeatRules(maxPartySize), nil
	}

	rules := make([]domain.SeatRule, 0, len(f.SeatTypes))
	seen := make(map[string]bool, len(f.SeatTypes))

	for _, st := range f.SeatTypes {
		name := strings.ToLower(strings.TrimSpace(st.Name))
		if name == "" {
			return nil, fmt.Errorf("%w: seat type name is required", ErrInvalidShopConfig)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate seat type %q", ErrInvalidShopConfig, name)
		}
		seen[name] = true

		rule := domain.SeatRule{
			Type:               domain.SeatType(name),
			MinParty:           st.MinParty,
			MaxParty:           st.MaxParty,
			TotalCapacityUnits: st.CapacityUnits,
			Overflow: domain.OverflowPolicy{
				FromPartySize: st.OverflowFromParty,
				Units:         st.OverflowUnits,
			},
		}
		if rule.MinParty == 0 {
			rule.MinParty = domain.MinPartySize
		}
		if rule.MaxParty == 0 {
			rule.MaxParty = maxPartySize
		}

		if rule.MinParty < domain.MinPartySize || rule.MinParty > rule.MaxParty || rule.MaxParty > maxPartySize {
			return nil, fmt.Errorf("%w: seat type %q: party bounds %d..%d must lie within 1..%d",
				ErrInvalidShopConfig, name, rule.MinParty, rule.MaxParty, maxPartySize)
		}
		if rule.TotalCapacityUnits < 0 {
			return nil, fmt.Errorf("%w: seat type %q: capacity_units must not be negative", ErrInvalidShopConfig, name)
		}
		if rule.Overflow.FromPartySize != 0 && rule.Overflow.Units < 2 {
			return nil, fmt.Errorf("%w: seat type %q: overflow_units must be at least 2", ErrInvalidShopConfig, name)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// DefaultSeatRules правила мест по умолчанию: стойка до 2 гостей, столы от 3,
// компания от 5 человек занимает два стола
func DefaultSeatRules(maxPartySize int) []domain.SeatRule {
	return []domain.SeatRule{
		{
			Type:     domain.SeatCounter,
			MinParty: domain.MinPartySize,
			MaxParty: domain.DefaultCounterMaxGuests,
		},
		{
			Type:     domain.SeatTable,
			MinParty: domain.DefaultTableMinGuests,
			MaxParty: maxPartySize,
			Overflow: domain.OverflowPolicy{
				FromPartySize: domain.DefaultTableOverflowFrom,
				Units:         domain.DefaultTableOverflowUnits,
			},
		},
	}
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	if names == nil {
		return []time.Weekday{domain.DefaultWeeklyOffDay}, nil
	}

	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidShopConfig, name)
		}
		days = append(days, day)
	}
	return days, nil
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
