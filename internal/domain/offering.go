package domain

import "github.com/google/uuid"

// ServiceOffering тип сессии, который можно забронировать
type ServiceOffering struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	IsOnline        bool      `json:"isOnline"`
	IsInPerson      bool      `json:"isInPerson"`
	DisplayOrder    *int      `json:"displayOrder,omitempty"`
}

// SupportsMode проверяет, доступен ли формат проведения для этого типа сессии
func (o *ServiceOffering) SupportsMode(mode SessionMode) bool {
	switch mode {
	case ModeOnline:
		return o.IsOnline
	case ModeInPerson:
		return o.IsInPerson
	default:
		return false
	}
}

// DefaultMode формат по умолчанию: онлайн, если поддерживается
func (o *ServiceOffering) DefaultMode() SessionMode {
	if o.IsOnline || !o.IsInPerson {
		return ModeOnline
	}
	return ModeInPerson
}
