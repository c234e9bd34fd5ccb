package admin_update_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
