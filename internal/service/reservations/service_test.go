package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
)

type fakeRepo struct {
	item *domain.Reservation
	err  error
}

func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*domain.Reservation, error) {
	return f.item, f.err
}

func TestService_GetByID(t *testing.T) {
	owner := uuid.New()
	res := &domain.Reservation{
		ID:              uuid.New(),
		ProviderID:      uuid.New(),
		ClientID:        owner,
		ServiceID:       uuid.New(),
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "13:00",
		EndTime:         "14:00",
		DurationMinutes: 60,
		Mode:            domain.ModeOnline,
		Price:           500,
		Status:          domain.StatusPending,
		CreatedAt:       time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	svc := NewService(&fakeRepo{item: res}, logger.NewNop())

	got, err := svc.GetByID(context.Background(), res.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, res.ID.String(), got.ID)
	assert.Equal(t, "2025-06-02", got.Date)
	assert.Equal(t, "13:00", got.StartTime)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "2025-06-01T09:00:00Z", got.CreatedAt)

	_, err = svc.GetByID(context.Background(), res.ID, uuid.New())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_Errors(t *testing.T) {
	_, err := NewService(&fakeRepo{err: reservationRepo.ErrReservationNotFound}, logger.NewNop()).
		GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = NewService(&fakeRepo{err: errors.New("db down")}, logger.NewNop()).
		GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrInternal)
}
