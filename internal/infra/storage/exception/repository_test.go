package exception

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ListByProviderAndRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	providerID := uuid.New()
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, consultant_id, date, start_time, is_available FROM availability_exceptions WHERE consultant_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, start_time ASC",
	)).
		WithArgs(providerID.String(), "2025-06-02", "2025-07-02").
		WillReturnRows(sqlmock.NewRows([]string{"id", "consultant_id", "date", "start_time", "is_available"}).
			AddRow(1, providerID.String(), from, "09:30:00", false).
			AddRow(2, providerID.String(), from.AddDate(0, 0, 1), "11:00:00", true))

	list, err := NewRepository(db).ListByProviderAndRange(context.Background(), providerID, from, to)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, providerID, list[0].ProviderID)
	assert.Equal(t, "09:30", list[0].StartTime.String())
	assert.False(t, list[0].IsAvailable)
	assert.True(t, list[1].IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByProviderAndRange_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM availability_exceptions").WillReturnError(errors.New("timeout"))
	_, err = repo.ListByProviderAndRange(context.Background(), uuid.New(), day, day)
	assert.ErrorIs(t, err, ErrExecQuery)

	mock.ExpectQuery("FROM availability_exceptions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "consultant_id", "date", "start_time", "is_available"}).
			AddRow(1, "not-a-uuid", day, "09:30:00", false))
	_, err = repo.ListByProviderAndRange(context.Background(), uuid.New(), day, day)
	assert.ErrorIs(t, err, ErrScanRow)
}
