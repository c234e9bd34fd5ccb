package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// DefaultKey ключ записи текущей погоды на споте
const DefaultKey = "gev:weather:current"

// Cache кэш текущей погоды в Redis
type Cache struct {
	rdb redis.Cmdable
	key string
	ttl time.Duration
}

// NewCache создает кэш погоды с заданным временем жизни записи
func NewCache(rdb redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		key: DefaultKey,
		ttl: ttl,
	}
}

// Get возвращает закэшированную погоду
func (c *Cache) Get(ctx context.Context) (*domain.Weather, error) {
	payload, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCacheUnavailable, err)
	}

	var w domain.Weather
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCorruptedEntry, err)
	}

	return &w, nil
}

// Set сохраняет погоду на ttl
func (c *Cache) Set(ctx context.Context, w *domain.Weather) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCorruptedEntry, err)
	}

	if err := c.rdb.SetEx(ctx, c.key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheUnavailable, err)
	}

	return nil
}
