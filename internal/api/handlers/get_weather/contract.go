package get_weather

import (
	"context"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

type WeatherService interface {
	Current(ctx context.Context) (*domain.Weather, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
