package contact

import (
	"context"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// Sender канал доставки сообщения формы контакта (SMTP, web3forms, Telegram)
type Sender interface {
	Name() string
	Enabled() bool
	Send(ctx context.Context, msg domain.ContactMessage) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncContactDelivery(channel string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
