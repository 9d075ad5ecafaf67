package create_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
	createReservation "github.com/m04kA/table-reservation/internal/usecase/create_reservation"
	"github.com/m04kA/table-reservation/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date         string  `json:"date"` // "2025-06-02"
	Slot         string  `json:"slot"` // "18:00"
	CustomerName string  `json:"customerName"`
	PartySize    *int    `json:"partySize"`
	SeatType     string  `json:"seatType"`
	Notes        *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Slot          string  `json:"slot"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	CustomerName  string  `json:"customerName"`
	PartySize     int     `json:"partySize"`
	SeatType      string  `json:"seatType"`
	CapacityUnits int     `json:"capacityUnits"`
	LargeParty    bool    `json:"largeParty"`
	Notes         *string `json:"notes,omitempty"`
}

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidSlot = errors.New("invalid slot")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и слот передаются как отсутствующие, проверка обязательности - в use case
func (r *CreateReservationRequest) ToUseCaseRequest(loc *time.Location) (*createReservation.Request, error) {
	req := &createReservation.Request{
		CustomerName: r.CustomerName,
		PartySize:    r.PartySize,
		SeatType:     r.SeatType,
		Notes:        r.Notes,
	}

	if r.Date != "" {
		date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
		req.Date = date
	}

	if r.Slot != "" {
		slot, err := types.ParseTimeOfDay(r.Slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidSlot, err)
		}
		req.Slot = &slot
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.EventID,
		Date:          resp.Date.Format(domain.DateFormat),
		Slot:          resp.Slot.String(),
		Start:         resp.Start.Format(domain.DateTimeFormat),
		End:           resp.End.Format(domain.DateTimeFormat),
		CustomerName:  resp.CustomerName,
		PartySize:     resp.PartySize,
		SeatType:      resp.SeatType,
		CapacityUnits: resp.CapacityUnits,
		LargeParty:    resp.LargeParty,
		Notes:         resp.Notes,
	}
}
