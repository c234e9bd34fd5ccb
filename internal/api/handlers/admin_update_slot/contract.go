package admin_update_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

type SlotService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
