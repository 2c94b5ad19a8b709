package check_conflict

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	checkConflict "github.com/m04kA/SMC-SessionBooking/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
)

type staticReservations struct {
	items []*domain.Reservation
	err   error
}

func (s staticReservations) ListByFilter(context.Context, domain.ReservationFilter) ([]*domain.Reservation, error) {
	return s.items, s.err
}

func serve(repo staticReservations, path string) *httptest.ResponseRecorder {
	uc := checkConflict.NewUseCase(repo, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/consultants/{consultantId}/conflicts", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	consultantID := uuid.New()
	repo := staticReservations{items: []*domain.Reservation{{
		ID:        uuid.New(),
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "10:30",
		EndTime:   "11:30",
		Status:    domain.StatusConfirmed,
	}}}
	base := "/consultants/" + consultantID.String() + "/conflicts?date=2025-06-02&startTime="

	rec := serve(repo, base+"09:00")
	require.Equal(t, http.StatusOK, rec.Code)
	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Conflict)
	assert.Empty(t, body.ConflictsWith)

	rec = serve(repo, base+"10:00")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Conflict)
	assert.Equal(t, []Interval{{StartTime: "10:30", EndTime: "11:30"}}, body.ConflictsWith)
	assert.Equal(t, "2025-06-02", body.Date)
}

func TestHandle_BadRequests(t *testing.T) {
	id := uuid.NewString()

	assert.Equal(t, http.StatusBadRequest, serve(staticReservations{}, "/consultants/x/conflicts?date=2025-06-02&startTime=10:00").Code)
	assert.Equal(t, http.StatusBadRequest, serve(staticReservations{}, "/consultants/"+id+"/conflicts?date=2025-06-02").Code)
	assert.Equal(t, http.StatusBadRequest, serve(staticReservations{}, "/consultants/"+id+"/conflicts?date=02.06.2025&startTime=10:00").Code)
	assert.Equal(t, http.StatusBadRequest, serve(staticReservations{}, "/consultants/"+id+"/conflicts?date=2025-06-02&startTime=25:00").Code)
}

func TestHandle_StoreError(t *testing.T) {
	rec := serve(staticReservations{err: errors.New("db down")},
		"/consultants/"+uuid.NewString()+"/conflicts?date=2025-06-02&startTime=10:00")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
