package admin_list_slots

import (
	"context"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context, filter domain.SlotFilter) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
