package check_conflict

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// UseCase проверка пересечения новой сессии с активными записями консультанта на дату
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	reservations, err := uc.reservationRepo.ListByFilter(ctx, domain.ReservationFilter{
		ProviderID: req.ProviderID,
		FromDate:   &req.Date,
		ToDate:     &req.Date,
		Statuses:   domain.BlockingStatuses,
	})
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get reservations for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	booked := make([]Interval, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsBlocking() {
			continue
		}
		s, errStart := r.StartTime.Minutes()
		e, errEnd := r.EndTime.Minutes()
		if errStart != nil || errEnd != nil {
			uc.logger.Warn("CheckConflict: reservation %s has invalid time range %s-%s, skipping", r.ID, r.StartTime, r.EndTime)
			continue
		}
		booked = append(booked, Interval{Start: s, End: e})
	}

	conflicts := overlapping(start, booked)

	uc.logger.Info("CheckConflict: provider=%s, date=%s, start=%s, conflicts=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, len(conflicts))

	return &Response{
		Conflict:      len(conflicts) > 0,
		ConflictsWith: conflicts,
	}, nil
}
