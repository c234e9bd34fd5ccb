package slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
	Update(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
