package get_catalog

import (
	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	loadCatalog "github.com/m04kA/SMC-SessionBooking/internal/usecase/load_catalog"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	SessionTypes []domain.ServiceOffering `json:"sessionTypes"`
	Consultants  []domain.Provider        `json:"consultants"`
	Notices      []notice.Notice          `json:"notices"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loadCatalog.Response, notices []notice.Notice) *CatalogResponse {
	return &CatalogResponse{
		SessionTypes: resp.Offerings,
		Consultants:  resp.Providers,
		Notices:      notices,
	}
}
