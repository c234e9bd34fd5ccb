package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	weatherCache "github.com/m04kA/GEV-BookingService/internal/infra/cache/weather"
)

// Service сервис текущей погоды на споте
// Сначала читает кэш, затем опрашивает провайдеров по порядку до первого успешного ответа
type Service struct {
	providers []Provider
	cache     Cache
	metrics   Metrics
	now       func() time.Time
	logger    Logger
}

// NewService создает новый экземпляр сервиса
// cache может быть nil - тогда каждый запрос идет к провайдерам
func NewService(cache Cache, metrics Metrics, logger Logger, providers ...Provider) *Service {
	return &Service{
		providers: providers,
		cache:     cache,
		metrics:   metrics,
		now:       time.Now,
		logger:    logger,
	}
}

// Current возвращает текущую погоду
// Недоступность Redis не ломает запрос: погода берется напрямую у провайдеров
func (s *Service) Current(ctx context.Context) (*domain.Weather, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	var errs []error
	for _, provider := range s.providers {
		if provider == nil || !provider.Enabled() {
			continue
		}

		w, err := provider.GetCurrent(ctx)
		if err != nil {
			s.metrics.IncWeatherProvider(provider.Name(), false)
			s.logger.Warn("Current: provider %s failed: %v", provider.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", provider.Name(), err))
			continue
		}
		s.metrics.IncWeatherProvider(provider.Name(), true)

		w.FetchedAt = s.now().UTC()
		s.toCache(ctx, w)
		return w, nil
	}

	if len(errs) == 0 {
		s.logger.Error("Current: no weather provider configured")
		return nil, ErrNoProvider
	}

	s.logger.Error("Current: all weather providers failed")
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, errors.Join(errs...))
}

func (s *Service) fromCache(ctx context.Context) *domain.Weather {
	if s.cache == nil {
		return nil
	}

	w, err := s.cache.Get(ctx)
	switch {
	case err == nil:
		s.metrics.IncWeatherCache(cacheHit)
		return w
	case errors.Is(err, weatherCache.ErrCacheMiss):
		s.metrics.IncWeatherCache(cacheMiss)
	default:
		s.metrics.IncWeatherCache(cacheError)
		s.logger.Warn("Current: weather cache read failed: %v", err)
	}
	return nil
}

func (s *Service) toCache(ctx context.Context, w *domain.Weather) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, w); err != nil {
		s.logger.Warn("Current: weather cache write failed: %v", err)
	}
}
