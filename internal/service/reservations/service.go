package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	reservationRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SessionBooking/internal/service/reservations/models"
)

// Service сервис чтения записей
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Клиент может видеть только свою запись.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, clientID uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for client=%s", id, clientID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.ClientID != clientID {
		s.logger.Warn("GetByID: access denied for client=%s to reservation id=%s", clientID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%s", id)
	return models.FromDomainReservation(reservation), nil
}
