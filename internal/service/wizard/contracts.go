package wizard

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/internal/usecase/get_available_slots"
)

// DraftStore хранилище черновика клиента
type DraftStore interface {
	Load(ctx context.Context, clientID uuid.UUID) (*domain.BookingDraft, error)
	Save(ctx context.Context, clientID uuid.UUID, draft *domain.BookingDraft) error
	Clear(ctx context.Context, clientID uuid.UUID) error
}

// AvailabilityCalculator расчет сетки слотов консультанта
type AvailabilityCalculator interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// ProviderDirectory каталог консультантов
type ProviderDirectory interface {
	GetProvider(ctx context.Context, id uuid.UUID, role string) (*domain.Provider, error)
	GetSpecialties(ctx context.Context, id uuid.UUID) ([]string, error)
}

// OfferingRepository справочник типов сессий
type OfferingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceOffering, error)
}

// Notifier получатель пользовательских уведомлений (реализуется *notice.Collector)
type Notifier interface {
	Success(message string)
	Warn(message string)
	Error(message string)
}

// MetricsRecorder приемник метрик мастера (реализуется *metrics.Metrics)
type MetricsRecorder interface {
	ObserveReservation(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
