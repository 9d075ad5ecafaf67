package create_reservation

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/table-reservation/internal/domain"
)

// validateRequired проверяет наличие и длину полей (правило 1)
func validateRequired(req *Request) error {
	if req.Date.IsZero() {
		return newValidationError(ErrMissingField, "date is required")
	}
	if req.Slot == nil {
		return newValidationError(ErrMissingField, "time slot is required")
	}
	if !req.Slot.Valid() {
		return newValidationError(ErrMissingField, "time slot %d is not a time of day", req.Slot.Minutes())
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return newValidationError(ErrMissingField, "customer name is required")
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return newValidationError(ErrFieldTooLong, "customer name must be at most %d characters", domain.MaxCustomerNameLength)
	}
	if req.PartySize == nil {
		return newValidationError(ErrMissingField, "party size is required")
	}
	if strings.TrimSpace(req.SeatType) == "" {
		return newValidationError(ErrMissingField, "seat type is required")
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return newValidationError(ErrFieldTooLong, "notes must be at most %d characters", domain.MaxNotesLength)
	}

	return nil
}

// validatePartySize проверяет общий лимит гостей (правило 2)
func validatePartySize(partySize int, shop *domain.ShopConfig) error {
	if partySize < domain.MinPartySize || partySize > shop.MaxPartySize {
		return newValidationError(ErrPartySizeOutOfRange,
			"party size must be between %d and %d", domain.MinPartySize, shop.MaxPartySize)
	}
	return nil
}

// validateSeat проверяет ограничения типа места (правило 3)
func validateSeat(seatType domain.SeatType, partySize int, shop *domain.ShopConfig) (domain.SeatRule, error) {
	rule, ok := shop.SeatRule(seatType)
	if !ok {
		return domain.SeatRule{}, newValidationError(ErrUnknownSeatType, "unknown seat type %q", seatType)
	}

	if partySize > rule.MaxParty {
		return domain.SeatRule{}, newValidationError(ErrSeatMaxExceeded, "%s seat max exceeded", seatType)
	}
	if partySize < rule.MinParty {
		return domain.SeatRule{}, newValidationError(ErrSeatMinNotMet,
			"%s seat requires at least %d guests", seatType, rule.MinParty)
	}

	return rule, nil
}
