package get_catalog

import (
	"context"

	loadCatalog "github.com/m04kA/SMC-SessionBooking/internal/usecase/load_catalog"
)

type LoadCatalogUseCase interface {
	Execute(ctx context.Context, notifier loadCatalog.Notifier) *loadCatalog.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
