package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

type Handler struct {
	useCase LoadCatalogUseCase
	logger  Logger
}

func NewHandler(useCase LoadCatalogUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Недоступный источник дает пустой список и предупреждение, а не ошибку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notices := notice.NewCollector()
	result := h.useCase.Execute(r.Context(), notices)

	h.logger.Info("GET /catalog - Catalog loaded: session_types=%d, consultants=%d",
		len(result.Offerings), len(result.Providers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, notices.Notices()))
}
