package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле администратора
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.auth: internal error")
)
