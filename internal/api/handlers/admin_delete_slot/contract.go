package admin_delete_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

type SlotService interface {
	Delete(ctx context.Context, id uuid.UUID) (*models.DeleteSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
