package weather

import "errors"

var (
	// ErrCacheMiss возвращается, когда в кэше нет актуальных данных
	ErrCacheMiss = errors.New("weather.cache: cache miss")

	// ErrCacheUnavailable возвращается при ошибке обращения к Redis
	ErrCacheUnavailable = errors.New("weather.cache: redis unavailable")

	// ErrCorruptedEntry возвращается, когда запись в кэше не читается
	ErrCorruptedEntry = errors.New("weather.cache: corrupted entry")
)
