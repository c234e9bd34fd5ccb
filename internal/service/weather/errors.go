package weather

import "errors"

var (
	// ErrNoProvider возвращается, когда ни один провайдер погоды не настроен
	ErrNoProvider = errors.New("service.weather: no weather provider configured")

	// ErrUnavailable возвращается, когда все провайдеры вернули ошибку
	ErrUnavailable = errors.New("service.weather: weather is unavailable")
)

// Результаты обращения к кэшу (метка метрики)
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)
