package smtp

import "gopkg.in/gomail.v2"

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dialer соединение с SMTP сервером (*gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}
