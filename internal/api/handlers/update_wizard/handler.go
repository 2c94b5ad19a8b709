package update_wizard

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers/wizard_view"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

const (
	msgMissingUserID        = "Kullanıcı kimliği gerekli"
	msgInvalidRequestBody   = "Geçersiz istek gövdesi"
	msgInvalidConsultantID  = "Geçersiz danışman kimliği"
	msgInvalidSessionTypeID = "Geçersiz seans türü kimliği"
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

// HandleConsultant PUT /api/v1/wizard/consultant
func (h *Handler) HandleConsultant(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /wizard/consultant"

	var req SelectConsultantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	consultantID, err := uuid.Parse(req.ConsultantID)
	if err != nil {
		h.logger.Warn("%s - Invalid consultant ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	h.update(w, r, route, func(ctx context.Context, wiz *wizard.Wizard) error {
		provider, err := h.service.LookupProvider(ctx, consultantID)
		if err != nil {
			return err
		}
		return wiz.SelectProvider(ctx, *provider)
	})
}

// HandleSessionType PUT /api/v1/wizard/session-type
func (h *Handler) HandleSessionType(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /wizard/session-type"

	var req SelectSessionTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	sessionTypeID, err := uuid.Parse(req.SessionTypeID)
	if err != nil {
		h.logger.Warn("%s - Invalid session type ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSessionTypeID)
		return
	}

	h.update(w, r, route, func(ctx context.Context, wiz *wizard.Wizard) error {
		offering, err := h.service.LookupOffering(ctx, sessionTypeID)
		if err != nil {
			return err
		}
		return wiz.SelectService(ctx, *offering)
	})
}

// HandleDate PUT /api/v1/wizard/date
func (h *Handler) HandleDate(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /wizard/date"

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.update(w, r, route, func(ctx context.Context, wiz *wizard.Wizard) error {
		return wiz.SelectDate(ctx, req.Date)
	})
}

// HandleSlot PUT /api/v1/wizard/slot
func (h *Handler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /wizard/slot"

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.update(w, r, route, func(ctx context.Context, wiz *wizard.Wizard) error {
		return wiz.SelectSlot(ctx, req.StartTime)
	})
}

// update открывает мастер клиента, применяет изменение и отдает новое состояние
func (h *Handler) update(w http.ResponseWriter, r *http.Request, route string, apply func(ctx context.Context, wiz *wizard.Wizard) error) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	notices := notice.NewCollector()
	wiz, err := h.service.Open(r.Context(), clientID, notices)
	if err != nil {
		wizard_view.RespondError(w, err, notices, route, h.logger)
		return
	}

	if err := apply(r.Context(), wiz); err != nil {
		wizard_view.RespondError(w, err, notices, route, h.logger)
		return
	}

	h.logger.Info("%s - Wizard updated: client=%s, step=%s", route, clientID, wiz.Draft().CurrentStep)
	wizard_view.Respond(r.Context(), w, wiz, notices, route, h.logger)
}
