package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/table-reservation/internal/api/handlers"
	getCalendar "github.com/m04kA/table-reservation/internal/usecase/get_calendar"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month"
	msgInvalidDays  = "invalid days parameter"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleMonth GET /api/v1/calendar/{year}/{month}
func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Month(r.Context(), &getCalendar.MonthRequest{Year: year, Month: month})
	if err != nil {
		h.respondError(w, "GET /calendar/{year}/{month}", err)
		return
	}

	h.logger.Info("GET /calendar/{year}/{month} - Month retrieved successfully: %04d-%02d, days=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleUpcoming GET /api/v1/calendar/upcoming?days=N
func (h *Handler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	req := &getCalendar.UpcomingRequest{}

	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			h.logger.Warn("GET /calendar/upcoming - Invalid days %q", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Upcoming(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /calendar/upcoming", err)
		return
	}

	h.logger.Info("GET /calendar/upcoming - Days retrieved successfully: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, getCalendar.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	case handlers.RespondEngineError(w, err):
		h.logger.Warn("%s - Calendar error: %v", route, err)

	default:
		h.logger.Error("%s - Failed to build calendar: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
