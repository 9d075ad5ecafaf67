package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/table-reservation/internal/api/handlers"
	createReservation "github.com/m04kA/table-reservation/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidSlot        = "invalid slot, expected HH:MM"
	msgSlotBusy           = "the slot is being booked right now, please retry"
)

type Handler struct {
	useCase  CreateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidSlot) {
			handlers.RespondBadRequest(w, msgInvalidSlot)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *createReservation.ValidationError

		switch {
		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondRuleError(w, http.StatusConflict, createReservation.RuleName(err), err.Error())

		case errors.As(err, &vErr):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondRuleError(w, http.StatusBadRequest, createReservation.RuleName(err), vErr.Message)

		case errors.Is(err, createReservation.ErrSlotBusy):
			h.logger.Warn("POST /reservations - Slot busy: date=%s, slot=%s, error=%v", req.Date, req.Slot, err)
			w.Header().Set("Retry-After", "1")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSlotBusy)

		case handlers.RespondEngineError(w, err):
			h.logger.Error("POST /reservations - Calendar error: date=%s, slot=%s, error=%v", req.Date, req.Slot, err)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, slot=%s, error=%v",
				req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%s, date=%s, slot=%s",
		result.EventID, req.Date, req.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
