package get_slot

import (
	"context"

	"github.com/google/uuid"

	getCalendar "github.com/m04kA/GEV-BookingService/internal/usecase/get_calendar"
)

type GetSlotUseCase interface {
	GetSlot(ctx context.Context, id uuid.UUID) (*getCalendar.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
