package web3forms

import "errors"

var (
	// ErrNotConfigured возвращается, когда ключ доступа не настроен
	ErrNotConfigured = errors.New("web3forms client: access key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("web3forms client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("web3forms client: invalid response")

	// ErrRejected возвращается, когда сервис отклонил сообщение (success=false)
	ErrRejected = errors.New("web3forms client: submission rejected")
)
