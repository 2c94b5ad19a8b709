package domain

import "github.com/google/uuid"

// Provider консультант, к которому записывается клиент.
// Источник - внешний каталог пользователей, отфильтрованный по роли.
type Provider struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Specialties []string  `json:"specialties"`
}
