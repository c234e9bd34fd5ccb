package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// ChannelName имя канала доставки в логах и метриках
const ChannelName = "telegram"

// Notifier отправляет уведомления в чат администратора школы
type Notifier struct {
	bot    BotSender
	chatID int64
	log    Logger
}

// NewNotifier авторизует бота по токену
// Пустой токен или chatID дают выключенный Notifier (Enabled() == false)
func NewNotifier(token string, chatID int64, log Logger) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return &Notifier{chatID: chatID, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitBot, err)
	}

	log.Info("Telegram notifier authorized as @%s", bot.Self.UserName)
	return NewNotifierWithBot(bot, chatID, log), nil
}

// NewNotifierWithBot создает Notifier поверх готового клиента бота
func NewNotifierWithBot(bot BotSender, chatID int64, log Logger) *Notifier {
	return &Notifier{
		bot:    bot,
		chatID: chatID,
		log:    log,
	}
}

// Name имя канала доставки
func (n *Notifier) Name() string {
	return ChannelName
}

// Enabled сообщает, настроен ли бот
func (n *Notifier) Enabled() bool {
	return n != nil && n.bot != nil && n.chatID != 0
}

// NotifyNewBooking сообщает администратору о новом бронировании
func (n *Notifier) NotifyNewBooking(ctx context.Context, slot *domain.Slot, booking *domain.Booking) error {
	if !n.Enabled() {
		return ErrNotConfigured
	}

	available := slot.AvailableCount()
	text := fmt.Sprintf(`🆕 Nouvelle réservation
Créneau : %s %s - %s
Client : %s
Email : %s
Téléphone : %s
Chars : %d simple(s), %d double(s)
Restant : %d simple(s), %d double(s)`,
		formatDate(slot.Date), slot.Start, slot.End,
		booking.UserName, booking.Email, booking.Phone,
		booking.SimpleChars, booking.DoubleChars,
		max(available.SimpleAvailable, 0), max(available.DoubleAvailable, 0),
	)

	return n.send(ctx, text)
}

// Send пересылает сообщение формы контакта (канал доставки контакта)
func (n *Notifier) Send(ctx context.Context, msg domain.ContactMessage) error {
	if !n.Enabled() {
		return ErrNotConfigured
	}

	text := fmt.Sprintf("✉️ %s\nDe : %s <%s>\n\n%s",
		domain.ContactSubject, msg.Name, msg.Email, strings.TrimSpace(msg.Message))

	return n.send(ctx, text)
}

func (n *Notifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("%w: chat_id=%d: %v", ErrSend, n.chatID, err)
	}

	return nil
}

func formatDate(date time.Time) string {
	return date.Format("02/01/2006")
}
