package googlecalendar

// EventDateTime время начала или окончания события
// Для событий на весь день заполнено только Date
type EventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Event модель события Calendar API v3
type Event struct {
	ID          string        `json:"id,omitempty"`
	Status      string        `json:"status,omitempty"`
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Start       EventDateTime `json:"start"`
	End         EventDateTime `json:"end"`
}

// EventsPage страница ответа events.list
type EventsPage struct {
	Items         []Event `json:"items"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// ErrorResponse модель ошибки от Calendar API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const statusCancelled = "cancelled"
