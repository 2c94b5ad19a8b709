package submit_booking

import (
	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

// SubmitBookingRequest HTTP request model.
// Формат и заметка не хранятся в черновике и приходят вместе с подтверждением.
type SubmitBookingRequest struct {
	Mode  string  `json:"mode,omitempty"` // "online" | "in_person"
	Notes *string `json:"notes,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	ReservationID string          `json:"reservationId"`
	Status        string          `json:"status"`
	PaymentURL    string          `json:"paymentUrl"`
	Notices       []notice.Notice `json:"notices"`
}

// FromSubmitResult конвертирует результат подтверждения в HTTP response
func FromSubmitResult(result *wizard.SubmitResult, notices []notice.Notice) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		ReservationID: result.ReservationID.String(),
		Status:        string(domain.StatusPending),
		PaymentURL:    result.PaymentURL,
		Notices:       notices,
	}
}
