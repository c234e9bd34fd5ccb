package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/GEV-BookingService/internal/service/contact/models"
)

// Service сервис доставки сообщений формы контакта
// Каналы пробуются по порядку до первой успешной отправки
type Service struct {
	senders []Sender
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса
// Выключенные каналы (Enabled() == false) пропускаются
func NewService(metrics Metrics, logger Logger, senders ...Sender) *Service {
	return &Service{
		senders: senders,
		metrics: metrics,
		logger:  logger,
	}
}

// Submit валидирует и доставляет сообщение
// Заполненное поле-ловушка означает бота: сообщение молча отбрасывается с ответом об успехе
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, error) {
	if strings.TrimSpace(req.Botcheck) != "" {
		s.logger.Warn("Submit: honeypot filled, dropping message from email=%s", req.Email)
		return &models.SubmitResponse{Success: true, Message: models.MessageSent}, nil
	}

	msg := req.ToDomainMessage()
	if err := msg.Validate(); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.logger.Info("Submit: delivering message from email=%s", msg.Email)

	tried := 0
	for _, sender := range s.senders {
		if sender == nil || !sender.Enabled() {
			continue
		}
		tried++

		if err := sender.Send(ctx, msg); err != nil {
			s.metrics.IncContactDelivery(sender.Name(), false)
			s.logger.Warn("Submit: channel %s failed: %v", sender.Name(), err)
			continue
		}

		s.metrics.IncContactDelivery(sender.Name(), true)
		s.logger.Info("Submit: message from email=%s delivered via %s", msg.Email, sender.Name())
		return &models.SubmitResponse{Success: true, Message: models.MessageSent, Channel: sender.Name()}, nil
	}

	if tried == 0 {
		s.logger.Error("Submit: no delivery channel configured")
	} else {
		s.logger.Error("Submit: all %d delivery channels failed for email=%s", tried, msg.Email)
	}

	return &models.SubmitResponse{Success: false, Message: models.MessageFailed}, ErrDeliveryFailed
}
