package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	getAvailableSlots "github.com/m04kA/SMC-SessionBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

const (
	msgInvalidConsultantID = "Geçersiz danışman kimliği"
	msgInvalidHorizon      = "Geçersiz gün sayısı (1-90)"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/consultants/{consultantId}/available-slots
// Query params: horizonDays (optional, 1..90)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	consultantID, err := uuid.Parse(vars["consultantId"])
	if err != nil {
		h.logger.Warn("GET /consultants/{id}/available-slots - Invalid consultant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(consultantID, r.URL.Query().Get("horizonDays"))
	if err != nil {
		h.logger.Warn("GET /consultants/{id}/available-slots - Invalid horizon: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHorizon)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /consultants/{id}/available-slots - Invalid input: consultant_id=%s, error=%v", consultantID, err)
			handlers.RespondBadRequest(w, msgInvalidHorizon)

		default:
			h.logger.Error("GET /consultants/{id}/available-slots - Failed to get slots: consultant_id=%s, error=%v", consultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	notices := notice.NewCollector()
	if result.UsedFallback {
		notices.Warn(wizard.MsgFallbackSlots)
	}

	h.logger.Info("GET /consultants/{id}/available-slots - Slots retrieved successfully: consultant_id=%s, slots_count=%d, fallback=%t",
		consultantID, len(result.Slots), result.UsedFallback)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(consultantID, result, notices.Notices()))
}
