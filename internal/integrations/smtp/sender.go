package smtp

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// ChannelName имя канала доставки в логах и метриках
const ChannelName = "smtp"

// Sender отправляет сообщения формы контакта письмом на адрес школы
type Sender struct {
	dialer Dialer
	from   string
	to     string
	log    Logger
}

// NewSender создает отправителя поверх gomail
// Пустой host дает выключенный Sender (Enabled() == false)
func NewSender(host string, port int, user, password, from, to string, log Logger) *Sender {
	var dialer Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, user, password)
	}
	return NewSenderWithDialer(dialer, from, to, log)
}

// NewSenderWithDialer создает отправителя поверх готового соединения
func NewSenderWithDialer(dialer Dialer, from, to string, log Logger) *Sender {
	return &Sender{
		dialer: dialer,
		from:   from,
		to:     to,
		log:    log,
	}
}

// Name имя канала доставки
func (s *Sender) Name() string {
	return ChannelName
}

// Enabled сообщает, настроен ли SMTP
func (s *Sender) Enabled() bool {
	return s.dialer != nil && s.from != "" && s.to != ""
}

// Send отправляет сообщение формы контакта
// Reply-To указывает на автора, чтобы администратор мог ответить напрямую
func (s *Sender) Send(ctx context.Context, msg domain.ContactMessage) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m := BuildMessage(s.from, s.to, msg)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, s.to, err)
	}

	s.log.Info("SMTP: contact message sent to=%s reply_to=%s", s.to, msg.Email)
	return nil
}

// BuildMessage собирает письмо (текстовая и HTML версии)
func BuildMessage(from, to string, msg domain.ContactMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", domain.ContactSubject)

	plain := fmt.Sprintf("Nom : %s\nEmail : %s\n\n%s", msg.Name, msg.Email, msg.Message)
	m.SetBody("text/plain", plain)

	htmlBody := fmt.Sprintf("<p><strong>Nom :</strong> %s<br><strong>Email :</strong> %s</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"),
	)
	m.AddAlternative("text/html", htmlBody)

	return m
}
