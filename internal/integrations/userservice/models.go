package userservice

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// User модель пользователя из UserService
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
}

// ToProvider конвертирует пользователя в консультанта (без специализаций)
func (u User) ToProvider() domain.Provider {
	return domain.Provider{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		AvatarURL:   u.AvatarURL,
		Specialties: []string{},
	}
}

// SpecialtiesResponse ответ со списком специализаций пользователя
type SpecialtiesResponse struct {
	Specialties []string `json:"specialties"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
