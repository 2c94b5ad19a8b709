package models

import (
	"time"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// ReservationResponse ответ с данными записи для страницы оплаты
type ReservationResponse struct {
	ID              string  `json:"id"`
	ConsultantID    string  `json:"consultantId"`
	ClientID        string  `json:"clientId"`
	SessionTypeID   string  `json:"sessionTypeId"`
	Date            string  `json:"date"`      // "2025-06-02"
	StartTime       string  `json:"startTime"` // "13:00"
	EndTime         string  `json:"endTime"`   // "14:00"
	DurationMinutes int     `json:"durationMinutes"`
	Mode            string  `json:"mode"`
	Price           float64 `json:"price"`
	Notes           *string `json:"notes,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomainReservation конвертирует доменную модель в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID.String(),
		ConsultantID:    r.ProviderID.String(),
		ClientID:        r.ClientID.String(),
		SessionTypeID:   r.ServiceID.String(),
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		DurationMinutes: r.DurationMinutes,
		Mode:            string(r.Mode),
		Price:           r.Price,
		Notes:           r.Notes,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}
