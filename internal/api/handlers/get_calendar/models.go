package get_calendar

import (
	"github.com/m04kA/table-reservation/internal/domain"
	getCalendar "github.com/m04kA/table-reservation/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From string            `json:"from"`
	To   string            `json:"to"`
	Days []DaySummaryModel `json:"days"`
}

// DaySummaryModel статус одного дня
type DaySummaryModel struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Status    string `json:"status"`
	OpenSlots int    `json:"openSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DaySummaryModel, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DaySummaryModel{
			Date:      d.Date.Format(domain.DateFormat),
			Weekday:   d.Date.Weekday().String(),
			Status:    string(d.Status),
			OpenSlots: d.OpenSlots,
		})
	}

	result := &CalendarResponse{Days: days}
	if len(days) > 0 {
		result.From = resp.From.Format(domain.DateFormat)
		result.To = resp.To.Format(domain.DateFormat)
	}
	return result
}
