package smtp

import "errors"

var (
	// ErrNotConfigured возвращается, когда SMTP сервер или получатель не настроены
	ErrNotConfigured = errors.New("smtp sender: not configured")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("smtp sender: failed to send email")
)
