package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/service/calendar"
)

const (
	maxBodyBytes = 64 << 10

	msgInternalError      = "internal server error"
	msgGatewayUnavailable = "reservation calendar is temporarily unavailable, please retry"
	msgGatewayRejected    = "reservation calendar rejected the request"
	msgDateNotCovered     = "reservations are not open for this date yet"
)

// ErrorResponse модель ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
}

// RespondJSON пишет ответ в формате JSON
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondRuleError ответ с нарушенным правилом бронирования
func RespondRuleError(w http.ResponseWriter, status int, rule, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message, Rule: rule})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondEngineError отвечает на ошибки календаря и дату вне таблицы праздников
// Возвращает false, если ошибка не относится к ним
func RespondEngineError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrDateNotCovered):
		RespondError(w, http.StatusUnprocessableEntity, msgDateNotCovered)
		return true
	case errors.Is(err, calendar.ErrGatewayUnavailable):
		w.Header().Set("Retry-After", "5")
		RespondError(w, http.StatusServiceUnavailable, msgGatewayUnavailable)
		return true
	case errors.Is(err, calendar.ErrGatewayRejected):
		RespondError(w, http.StatusBadGateway, msgGatewayRejected)
		return true
	default:
		return false
	}
}

// DecodeJSON читает тело запроса; неизвестные поля и лишние данные запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}
