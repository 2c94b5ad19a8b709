package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

// ReservationStatus статус записи на сессию
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// BlockingStatuses статусы, которые занимают слот при расчете доступности
var BlockingStatuses = []ReservationStatus{StatusConfirmed, StatusPending}

// SessionMode формат проведения сессии
type SessionMode string

const (
	ModeOnline   SessionMode = "online"
	ModeInPerson SessionMode = "in_person"
)

// ParseSessionMode проверяет строковое значение формата
func ParseSessionMode(s string) (SessionMode, bool) {
	switch SessionMode(s) {
	case ModeOnline, ModeInPerson:
		return SessionMode(s), true
	default:
		return "", false
	}
}

// Reservation запись на сессию. Создается один раз при подтверждении мастера,
// дальше ею владеют внешние сервисы (оплата, админка).
type Reservation struct {
	ID              uuid.UUID
	ProviderID      uuid.UUID
	ClientID        uuid.UUID
	ServiceID       uuid.UUID
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Mode            SessionMode
	Price           float64
	Notes           *string
	Status          ReservationStatus
	CreatedAt       time.Time
}

// IsBlocking возвращает true, если запись занимает слот
func (r *Reservation) IsBlocking() bool {
	for _, s := range BlockingStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// ReservationFilter фильтр выборки записей консультанта
type ReservationFilter struct {
	ProviderID uuid.UUID           // Обязательный параметр
	FromDate   *time.Time          // Начиная с даты (включительно)
	ToDate     *time.Time          // По дату (включительно)
	Statuses   []ReservationStatus // Пустой список - любые статусы
}
