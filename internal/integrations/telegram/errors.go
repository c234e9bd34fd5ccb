package telegram

import "errors"

var (
	// ErrNotConfigured возвращается, когда бот или чат администратора не настроены
	ErrNotConfigured = errors.New("telegram notifier: bot is not configured")

	// ErrInitBot возвращается при ошибке авторизации бота
	ErrInitBot = errors.New("telegram notifier: failed to init bot")

	// ErrSend возвращается при ошибке отправки сообщения
	ErrSend = errors.New("telegram notifier: failed to send message")
)
