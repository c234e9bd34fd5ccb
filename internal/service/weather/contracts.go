package weather

import (
	"context"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// Provider внешний источник погоды (WeatherAPI, OpenWeatherMap)
type Provider interface {
	Name() string
	Enabled() bool
	GetCurrent(ctx context.Context) (*domain.Weather, error)
}

// Cache кэш текущей погоды
type Cache interface {
	Get(ctx context.Context) (*domain.Weather, error)
	Set(ctx context.Context, w *domain.Weather) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncWeatherCache(res string)
	IncWeatherProvider(provider string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
