package load_catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// OfferingRepository справочник типов сессий
type OfferingRepository interface {
	ListActive(ctx context.Context) ([]domain.ServiceOffering, error)
}

// ProviderDirectory каталог консультантов
type ProviderDirectory interface {
	ListByRole(ctx context.Context, role string) ([]domain.Provider, error)
	GetSpecialties(ctx context.Context, id uuid.UUID) ([]string, error)
}

// Notifier получатель пользовательских уведомлений
type Notifier interface {
	Warn(message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
