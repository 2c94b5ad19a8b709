package check_conflict

import (
	"context"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	ListByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
