package submit_booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard/wizardtest"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

func request(body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodPost, "/api/v1/wizard/submit", nil)
	} else {
		r = httptest.NewRequest(http.MethodPost, "/api/v1/wizard/submit", strings.NewReader(body))
	}
	return r.WithContext(middleware.WithUserID(r.Context(), wizardtest.ClientID))
}

func TestHandle_Success(t *testing.T) {
	env := wizardtest.NewEnv(t)
	env.Seed(wizardtest.ClientID, wizardtest.ConfirmDraft())

	rec := httptest.NewRecorder()
	NewHandler(env.Service, logger.NewNop()).Handle(rec, request(`{"mode":"in_person","notes":"  ilk görüşme  "}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	wantURL := wizardtest.PaymentURL + "?reservation_id=" + wizardtest.ReservationID.String()
	assert.Equal(t, wantURL, rec.Header().Get("Location"))

	var body SubmitBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, wizardtest.ReservationID.String(), body.ReservationID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, wantURL, body.PaymentURL)
	require.Len(t, body.Notices, 1)
	assert.Equal(t, notice.LevelSuccess, body.Notices[0].Level)

	require.Len(t, env.Reservations.Created, 1)
	created := env.Reservations.Created[0]
	assert.Equal(t, domain.ModeInPerson, created.Mode)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "ilk görüşme", *created.Notes)
	assert.Equal(t, 500.0, created.Price)
	assert.Equal(t, 60, created.DurationMinutes)

	_, ok := env.Store.Stored(wizardtest.ClientID)
	assert.False(t, ok)
}

func TestHandle_EmptyBody(t *testing.T) {
	env := wizardtest.NewEnv(t)
	env.Seed(wizardtest.ClientID, wizardtest.ConfirmDraft())

	rec := httptest.NewRecorder()
	NewHandler(env.Service, logger.NewNop()).Handle(rec, request(""))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, env.Reservations.Created, 1)
	assert.Equal(t, domain.ModeOnline, env.Reservations.Created[0].Mode)
	assert.Nil(t, env.Reservations.Created[0].Notes)
}

func TestHandle_Incomplete(t *testing.T) {
	env := wizardtest.NewEnv(t)

	rec := httptest.NewRecorder()
	NewHandler(env.Service, logger.NewNop()).Handle(rec, request(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.Reservations.Created)
}

func TestHandle_InvalidMode(t *testing.T) {
	env := wizardtest.NewEnv(t)
	env.Seed(wizardtest.ClientID, wizardtest.ConfirmDraft())

	rec := httptest.NewRecorder()
	NewHandler(env.Service, logger.NewNop()).Handle(rec, request(`{"mode":"phone"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.Reservations.Created)
}

func TestHandle_WriteFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "slot taken",
			err:        errors.Join(reservationRepo.ErrSlotTaken, &pq.Error{Code: "23505"}),
			wantStatus: http.StatusConflict,
			wantMsg:    wizard.MsgSlotTaken,
		},
		{
			name:       "store message",
			err:        errors.Join(reservationRepo.ErrExecQuery, &pq.Error{Message: "consultant is on leave"}),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "consultant is on leave",
		},
		{
			name:       "generic",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusBadGateway,
			wantMsg:    wizard.MsgSubmitFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := wizardtest.NewEnv(t)
			env.Seed(wizardtest.ClientID, wizardtest.ConfirmDraft())
			env.Reservations.Err = tt.err

			rec := httptest.NewRecorder()
			NewHandler(env.Service, logger.NewNop()).Handle(rec, request(""))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)

			stored, ok := env.Store.Stored(wizardtest.ClientID)
			require.True(t, ok)
			assert.Equal(t, domain.StepConfirm, stored.CurrentStep)
		})
	}
}
