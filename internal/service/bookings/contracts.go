package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	ListAll(ctx context.Context, filter domain.SlotFilter) ([]*domain.BookingWithSlot, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncBookingCreated(source string)
	IncBookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
