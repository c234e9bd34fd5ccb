package models

import "github.com/m04kA/GEV-BookingService/internal/domain"

// Сообщения, показываемые посетителю сайта
const (
	MessageSent   = "Votre message a bien été envoyé ! Nous vous répondrons dans les plus brefs délais."
	MessageFailed = "Une erreur est survenue lors de l'envoi du message. Veuillez réessayer plus tard."
)

// SubmitRequest запрос формы контакта
// Botcheck - скрытое поле-ловушка: люди его не заполняют
type SubmitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Botcheck string `json:"botcheck,omitempty"`
}

// ToDomainMessage конвертирует запрос в domain модель
func (r *SubmitRequest) ToDomainMessage() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}.Normalize()
}

// SubmitResponse результат отправки формы
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Channel string `json:"-"`
}
