package navigate_wizard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers/wizard_view"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard/wizardtest"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
)

func request() *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/next", nil)
	return r.WithContext(middleware.WithUserID(r.Context(), wizardtest.ClientID))
}

func TestHandleNext_Guard(t *testing.T) {
	env := wizardtest.NewEnv(t)
	h := NewHandler(env.Service, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleNext(rec, request())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, wizard.MsgSelectProvider, body.Error)
}

func TestHandleNext_Advances(t *testing.T) {
	env := wizardtest.NewEnv(t)
	d := wizardtest.ConfirmDraft()
	d.CurrentStep = domain.StepSelectTime
	env.Seed(wizardtest.ClientID, d)
	h := NewHandler(env.Service, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleNext(rec, request())

	require.Equal(t, http.StatusOK, rec.Code)
	var body wizard_view.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5, body.Step)

	stored, _ := env.Store.Stored(wizardtest.ClientID)
	assert.Equal(t, domain.StepConfirm, stored.CurrentStep)

	rec = httptest.NewRecorder()
	h.HandleNext(rec, request())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBack(t *testing.T) {
	env := wizardtest.NewEnv(t)
	env.Seed(wizardtest.ClientID, wizardtest.ConfirmDraft())
	h := NewHandler(env.Service, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleBack(rec, request())

	require.Equal(t, http.StatusOK, rec.Code)
	stored, _ := env.Store.Stored(wizardtest.ClientID)
	assert.Equal(t, domain.StepSelectTime, stored.CurrentStep)
	require.NotNil(t, stored.SelectedSlot)
}

func TestHandleBack_FirstStep(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(wizardtest.NewEnv(t).Service, logger.NewNop()).HandleBack(rec, request())

	require.Equal(t, http.StatusOK, rec.Code)
	var body wizard_view.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Step)
}
