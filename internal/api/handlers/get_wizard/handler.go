package get_wizard

import (
	"net/http"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers/wizard_view"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

const (
	route            = "GET /wizard"
	msgMissingUserID = "Kullanıcı kimliği gerekli"
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

// Handle GET /api/v1/wizard
// Восстанавливает мастер клиента и возвращает текущий шаг, выбор и слоты выбранной даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
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

	h.logger.Info("%s - Wizard opened: client=%s, step=%s", route, clientID, wiz.Draft().CurrentStep)
	wizard_view.Respond(r.Context(), w, wiz, notices, route, h.logger)
}
