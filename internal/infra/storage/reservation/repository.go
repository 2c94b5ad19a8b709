package reservation

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
	table = "sessions"

	// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"consultant_id",
	"client_id",
	"session_type_id",
	"date",
	"start_time",
	"end_time",
	"duration_minutes",
	"mode",
	"price",
	"notes",
	"status",
	"created_at",
}

// Repository репозиторий записей на сессии.
// Сервис только читает записи и создает новые, статусы меняют внешние системы.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись и заполняет ID, Status и CreatedAt из БД.
// Занятый слот (уникальный индекс по consultant_id, date, start_time для активных статусов)
// возвращается как ErrSlotTaken. Исходная *pq.Error остается доступной через errors.As.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"consultant_id",
			"client_id",
			"session_type_id",
			"date",
			"start_time",
			"end_time",
			"duration_minutes",
			"mode",
			"price",
			"notes",
			"status",
		).
		Values(
			res.ProviderID,
			res.ClientID,
			res.ServiceID,
			res.Date.Format(domain.DateFormat),
			res.StartTime,
			res.EndTime,
			res.DurationMinutes,
			res.Mode,
			res.Price,
			res.Notes,
			res.Status,
		).
		Suffix("RETURNING id, status, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.Status, &res.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: Create: %w", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByFilter получает записи консультанта, отсортированные по дате и времени начала
func (r *Repository) ListByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"consultant_id": filter.ProviderID.String()}).
		OrderBy("date ASC", "start_time ASC")

	if filter.FromDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": filter.FromDate.Format(domain.DateFormat)})
	}
	if filter.ToDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": filter.ToDate.Format(domain.DateFormat)})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where("status = ANY(?)", pq.Array(statuses))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByFilter - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var (
		res   domain.Reservation
		notes sql.NullString
	)

	err := row.Scan(
		&res.ID,
		&res.ProviderID,
		&res.ClientID,
		&res.ServiceID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.DurationMinutes,
		&res.Mode,
		&res.Price,
		&notes,
		&res.Status,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		res.Notes = &notes.String
	}

	return &res, nil
}
