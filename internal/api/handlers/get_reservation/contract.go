package get_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id uuid.UUID, clientID uuid.UUID) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
