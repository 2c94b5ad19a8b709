package submit_booking

import (
	"net/http"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers/wizard_view"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

const (
	route                 = "POST /wizard/submit"
	msgMissingUserID      = "Kullanıcı kimliği gerekli"
	msgInvalidRequestBody = "Geçersiz istek gövdesi"
	msgInvalidMode        = "Geçersiz seans formatı"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/submit
// Создает запись со статусом pending и возвращает ссылку на оплату (тело и заголовок Location)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubmitBookingRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("%s - Invalid request body: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	var mode domain.SessionMode
	if req.Mode != "" {
		parsed, ok := domain.ParseSessionMode(req.Mode)
		if !ok {
			h.logger.Warn("%s - Invalid mode: client=%s, mode=%q", route, clientID, req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)
			return
		}
		mode = parsed
	}

	notices := notice.NewCollector()
	wiz, err := h.service.Open(r.Context(), clientID, notices)
	if err != nil {
		wizard_view.RespondError(w, err, notices, route, h.logger)
		return
	}

	if mode != "" {
		if err := wiz.SetMode(mode); err != nil {
			wizard_view.RespondError(w, err, notices, route, h.logger)
			return
		}
	}
	if req.Notes != nil {
		if err := wiz.SetNotes(*req.Notes); err != nil {
			wizard_view.RespondError(w, err, notices, route, h.logger)
			return
		}
	}

	result, err := wiz.Submit(r.Context())
	if err != nil {
		wizard_view.RespondError(w, err, notices, route, h.logger)
		return
	}

	h.logger.Info("%s - Reservation created: client=%s, reservation=%s", route, clientID, result.ReservationID)
	w.Header().Set("Location", result.PaymentURL)
	handlers.RespondJSON(w, http.StatusCreated, FromSubmitResult(result, notices.Notices()))
}
