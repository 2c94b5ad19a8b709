package exception

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/psqlbuilder"
)

// Repository хранилище исключений доступности консультантов (отпуск, перерывы и т.п.)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByProviderAndRange возвращает исключения консультанта в диапазоне дат [from, to] включительно
func (r *Repository) ListByProviderAndRange(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]domain.AvailabilityException, error) {
	query, args, err := psqlbuilder.Select("id", "consultant_id", "date", "start_time", "is_available").
		From("availability_exceptions").
		Where(squirrel.Eq{"consultant_id": providerID.String()}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProviderAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProviderAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.AvailabilityException, 0)
	for rows.Next() {
		var e domain.AvailabilityException
		if err := rows.Scan(&e.ID, &e.ProviderID, &e.Date, &e.StartTime, &e.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: ListByProviderAndRange - scan exception: %v", ErrScanRow, err)
		}
		exceptions = append(exceptions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProviderAndRange - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}
