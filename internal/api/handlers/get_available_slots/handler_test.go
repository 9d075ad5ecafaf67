package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/service/calendar"
	getAvailableSlots "github.com/m04kA/table-reservation/internal/usecase/get_available_slots"
	"github.com/m04kA/table-reservation/pkg/logger"
	"github.com/m04kA/table-reservation/pkg/types"
)

var jst = time.FixedZone("JST", 9*60*60)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc GetAvailableSlotsUseCase, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/days/{date}/slots", NewHandler(uc, jst, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, jst),
		Status:          domain.DayOpen,
		DurationMinutes: 30,
		Slots:           []types.TimeOfDay{types.MustTimeOfDay(17, 0), types.MustTimeOfDay(19, 30)},
	}}

	rec := serve(uc, "/api/v1/days/2025-06-02/slots")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, jst, uc.got.Date.Location())

	var body DayAvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2025-06-02", body.Date)
	assert.Equal(t, "open", body.Status)
	assert.Equal(t, []string{"17:00", "19:30"}, body.OpenSlots)
}

func TestHandle_ClosedDayHasEmptyList(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, jst),
		Status:   domain.DayClosed,
		IsClosed: true,
	}}

	rec := serve(uc, "/api/v1/days/2025-06-01/slots")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openSlots":[]`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "/api/v1/days/tomorrow/slots").Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		serve(&stubUseCase{err: calendar.ErrGatewayUnavailable}, "/api/v1/days/2025-06-02/slots").Code)
	assert.Equal(t, http.StatusUnprocessableEntity,
		serve(&stubUseCase{err: domain.ErrDateNotCovered}, "/api/v1/days/2028-05-03/slots").Code)
}
