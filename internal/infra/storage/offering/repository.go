package offering

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/psqlbuilder"
)

const (
	table = "session_types"

	// undefinedColumn код ошибки PostgreSQL для несуществующей колонки
	undefinedColumn = "42703"
)

var columns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"is_online",
	"is_in_person",
	"display_order",
}

// Repository справочник типов сессий
type Repository struct {
	db     DBExecutor
	logger Logger
}

// NewRepository создает новый экземпляр репозитория типов сессий
func NewRepository(db DBExecutor, logger Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// ListActive возвращает активные типы сессий, упорядоченные по display_order.
// На схемах без колонки display_order повторяет запрос с сортировкой по цене.
func (r *Repository) ListActive(ctx context.Context) ([]domain.ServiceOffering, error) {
	offerings, err := r.listActive(ctx, true)
	if err == nil {
		return offerings, nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != undefinedColumn {
		return nil, err
	}

	r.logger.Warn("ListActive: display_order is undefined, falling back to price ordering: %v", pqErr.Message)
	return r.listActive(ctx, false)
}

func (r *Repository) listActive(ctx context.Context, withDisplayOrder bool) ([]domain.ServiceOffering, error) {
	cols := columns
	orderBy := []string{"display_order ASC NULLS LAST", "price ASC"}
	if !withDisplayOrder {
		cols = columns[:len(columns)-1]
		orderBy = []string{"price ASC"}
	}

	query, args, err := psqlbuilder.Select(cols...).
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	offerings := make([]domain.ServiceOffering, 0)
	for rows.Next() {
		o, err := scanOffering(rows, withDisplayOrder)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan session type: %v", ErrScanRow, err)
		}
		offerings = append(offerings, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return offerings, nil
}

// GetByID получает активный тип сессии по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceOffering, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String(), "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOffering(r.db.QueryRowContext(ctx, query, args...), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session type: %v", ErrScanRow, err)
	}

	return o, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOffering(row scanner, withDisplayOrder bool) (*domain.ServiceOffering, error) {
	var (
		o            domain.ServiceOffering
		description  sql.NullString
		displayOrder sql.NullInt64
	)

	dest := []interface{}{
		&o.ID,
		&o.Name,
		&description,
		&o.DurationMinutes,
		&o.Price,
		&o.IsOnline,
		&o.IsInPerson,
	}
	if withDisplayOrder {
		dest = append(dest, &displayOrder)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	o.Description = description.String
	if displayOrder.Valid {
		order := int(displayOrder.Int64)
		o.DisplayOrder = &order
	}

	return &o, nil
}
