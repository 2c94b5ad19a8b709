package wizard

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// View снимок состояния мастера для клиента
type View struct {
	Draft        domain.BookingDraft
	Dates        []string          // Даты, в которых есть хотя бы один свободный слот
	Slots        []domain.TimeSlot // Слоты выбранной даты (или пусто, если дата не выбрана)
	UsedFallback bool
}

// SubmitResult результат подтверждения записи
type SubmitResult struct {
	ReservationID uuid.UUID
	PaymentURL    string
}
