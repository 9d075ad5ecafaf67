package get_available_slots

import (
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
	getAvailableSlots "github.com/m04kA/table-reservation/internal/usecase/get_available_slots"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	Date            string   `json:"date"`
	Status          string   `json:"status"`
	IsClosed        bool     `json:"isClosed"`
	DurationMinutes int      `json:"durationMinutes"`
	OpenSlots       []string `json:"openSlots"`
}

// ToUseCaseRequest формирует запрос к use case из параметра пути
func ToUseCaseRequest(dateStr string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DayAvailabilityResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &DayAvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Status:          string(resp.Status),
		IsClosed:        resp.IsClosed,
		DurationMinutes: resp.DurationMinutes,
		OpenSlots:       slots,
	}
}
