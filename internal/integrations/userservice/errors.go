package userservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден или не является консультантом
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrUnavailable возвращается, когда UserService не отвечает
	ErrUnavailable = errors.New("userservice client: service unavailable")
)
