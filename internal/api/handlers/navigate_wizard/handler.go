package navigate_wizard

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers/wizard_view"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

const msgMissingUserID = "Kullanıcı kimliği gerekli"

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

// HandleNext POST /api/v1/wizard/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, "POST /wizard/next", (*wizard.Wizard).Next)
}

// HandleBack POST /api/v1/wizard/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, "POST /wizard/back", (*wizard.Wizard).Back)
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request, route string, move func(*wizard.Wizard, context.Context) error) {
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

	from := wiz.Draft().CurrentStep
	if err := move(wiz, r.Context()); err != nil {
		wizard_view.RespondError(w, err, notices, route, h.logger)
		return
	}

	h.logger.Info("%s - Step changed: client=%s, %s -> %s", route, clientID, from, wiz.Draft().CurrentStep)
	wizard_view.Respond(r.Context(), w, wiz, notices, route, h.logger)
}
