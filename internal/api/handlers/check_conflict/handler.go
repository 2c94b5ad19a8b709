package check_conflict

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	checkConflict "github.com/m04kA/SMC-SessionBooking/internal/usecase/check_conflict"
)

const (
	msgInvalidConsultantID = "Geçersiz danışman kimliği"
	msgMissingParams       = "Tarih ve başlangıç saati gerekli"
	msgInvalidParams       = "Geçersiz tarih (YYYY-MM-DD) veya saat (HH:MM)"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/consultants/{consultantId}/conflicts
// Query params: date (YYYY-MM-DD), startTime (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultantID, err := uuid.Parse(mux.Vars(r)["consultantId"])
	if err != nil {
		h.logger.Warn("GET /consultants/{id}/conflicts - Invalid consultant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	startStr := r.URL.Query().Get("startTime")
	if dateStr == "" || startStr == "" {
		h.logger.Warn("GET /consultants/{id}/conflicts - Missing date or start time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(consultantID, dateStr, startStr)
	if err != nil {
		h.logger.Warn("GET /consultants/{id}/conflicts - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("GET /consultants/{id}/conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /consultants/{id}/conflicts - Failed to check conflicts: consultant_id=%s, error=%v", consultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultants/{id}/conflicts - Checked: consultant_id=%s, date=%s, start=%s, conflict=%t",
		consultantID, dateStr, startStr, result.Conflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
