package offering

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, logger.NewNop()), mock
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := newMock(t)
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, duration_minutes, price, is_online, is_in_person, display_order FROM session_types WHERE is_active = $1 ORDER BY display_order ASC NULLS LAST, price ASC",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(first.String(), "Tanışma", nil, 30, "0", true, false, 1).
			AddRow(second.String(), "Bireysel danışmanlık", "60 dakika", 60, "500.00", true, true, nil))

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, first, list[0].ID)
	assert.Empty(t, list[0].Description)
	require.NotNil(t, list[0].DisplayOrder)
	assert.Equal(t, 1, *list[0].DisplayOrder)
	assert.Equal(t, 500.0, list[1].Price)
	assert.Nil(t, list[1].DisplayOrder)
	assert.True(t, list[1].IsInPerson)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive_UndefinedColumnFallback(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY display_order")).
		WillReturnError(&pq.Error{Code: "42703", Message: `column "display_order" does not exist`})
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, duration_minutes, price, is_online, is_in_person FROM session_types WHERE is_active = $1 ORDER BY price ASC",
	)).
		WillReturnRows(sqlmock.NewRows(columns[:len(columns)-1]).
			AddRow(uuid.New().String(), "Kısa görüşme", "", 30, "150", true, false))

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 150.0, list[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive_OtherError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM session_types").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListActive(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM session_types WHERE id = $1 AND is_active = $2")).
		WithArgs(id.String(), true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), "Bireysel danışmanlık", "", 60, "500", true, false, 2))

	o, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 60, o.DurationMinutes)

	mock.ExpectQuery("FROM session_types").WillReturnRows(sqlmock.NewRows(columns))
	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOfferingNotFound)
}
