package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BotSender отправка сообщений ботом (*tgbotapi.BotAPI)
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
