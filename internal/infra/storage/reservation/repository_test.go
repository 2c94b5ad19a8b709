package reservation

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/ptr"
)

var (
	providerID = uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000001")
	clientID   = uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000002")
	serviceID  = uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000003")
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func newReservation() *domain.Reservation {
	return &domain.Reservation{
		ProviderID:      providerID,
		ClientID:        clientID,
		ServiceID:       serviceID,
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "13:00",
		EndTime:         "14:00",
		DurationMinutes: 60,
		Mode:            domain.ModeOnline,
		Price:           500,
		Notes:           ptr.Ptr("first session"),
		Status:          domain.StatusPending,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(
			providerID, clientID, serviceID, "2025-06-02", "13:00", "14:00", 60,
			"online", 500.0, "first session", "pending",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(id.String(), "pending", createdAt))

	res, err := repo.Create(context.Background(), newReservation())
	require.NoError(t, err)
	assert.Equal(t, id, res.ID)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, createdAt, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), newReservation())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "duplicate key value violates unique constraint", pqErr.Message)
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WillReturnError(&pq.Error{Code: "23503", Detail: "Key (session_type_id) is not present"})

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "Key (session_type_id) is not present", pqErr.Detail)
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, consultant_id")).
		WithArgs(id.String()).
		WillReturnRows(reservationRows().AddRow(
			id.String(), providerID.String(), clientID.String(), serviceID.String(),
			date, "13:00:00", "14:00:00", 60, "online", []byte("500.00"), nil, "pending", date,
		))

	res, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, res.ID)
	assert.Equal(t, providerID, res.ProviderID)
	assert.Equal(t, "13:00", res.StartTime.String())
	assert.Equal(t, "14:00", res.EndTime.String())
	assert.Equal(t, 500.0, res.Price)
	assert.Nil(t, res.Notes)
	assert.Equal(t, domain.ModeOnline, res.Mode)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, consultant_id")).
		WillReturnRows(reservationRows())

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ListByFilter(t *testing.T) {
	repo, mock := newMock(t)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM sessions WHERE consultant_id = $1 AND date >= $2 AND date <= $3 AND status = ANY($4) ORDER BY date ASC, start_time ASC",
	)).
		WithArgs(providerID.String(), "2025-06-02", "2025-07-02", sqlmock.AnyArg()).
		WillReturnRows(reservationRows().
			AddRow(uuid.New().String(), providerID.String(), clientID.String(), serviceID.String(),
				from, "10:30:00", "11:30:00", 60, "online", "250", "bring notes", "confirmed", from).
			AddRow(uuid.New().String(), providerID.String(), clientID.String(), serviceID.String(),
				from, "13:00:00", "14:00:00", 60, "in_person", "500", nil, "pending", from))

	list, err := repo.ListByFilter(context.Background(), domain.ReservationFilter{
		ProviderID: providerID,
		FromDate:   &from,
		ToDate:     &to,
		Statuses:   domain.BlockingStatuses,
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "10:30", list[0].StartTime.String())
	require.NotNil(t, list[0].Notes)
	assert.Equal(t, "bring notes", *list[0].Notes)
	assert.Equal(t, domain.StatusPending, list[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByFilter_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).WillReturnError(errors.New("connection refused"))

	_, err := repo.ListByFilter(context.Background(), domain.ReservationFilter{ProviderID: providerID})
	assert.ErrorIs(t, err, ErrExecQuery)
}
