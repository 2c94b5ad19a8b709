package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// ExceptionRepository хранилище исключений доступности
type ExceptionRepository interface {
	ListByProviderAndRange(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.AvailabilityException, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	ListByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// MetricsRecorder приемник метрик расчета доступности (реализуется *metrics.Metrics)
type MetricsRecorder interface {
	ObserveAvailability(usedFallback bool)
	ObserveAvailabilitySourceFailure(source string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
