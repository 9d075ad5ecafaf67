package get_available_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/table-reservation/internal/api/handlers"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location - зона ресторана, в которой интерпретируется дата из пути
func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/days/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	useCaseReq, err := ToUseCaseRequest(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondEngineError(w, err) {
			h.logger.Warn("GET /days/{date}/slots - Calendar error: date=%s, error=%v", dateStr, err)
			return
		}
		h.logger.Error("GET /days/{date}/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /days/{date}/slots - Slots retrieved successfully: date=%s, status=%s, slots_count=%d",
		dateStr, result.Status, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
