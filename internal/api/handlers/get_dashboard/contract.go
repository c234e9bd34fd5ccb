package get_dashboard

import (
	"context"

	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
)

type DashboardService interface {
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
