package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
)

const msgTooManyRequests = "Trop de requêtes. Veuillez réessayer dans quelques instants."

// visitor лимитер одного клиента и время его последнего запроса
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов по IP клиента
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
	logger   Logger
}

// NewRateLimiter создает лимитер: requestsPerMinute запросов в минуту с запасом burst
func NewRateLimiter(requestsPerMinute float64, burst int, logger Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerMinute / 60),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

// Limit middleware, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Limit() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !rl.allow(ip) {
				rl.logger.Warn("RateLimit: too many requests from ip=%s: %s %s", ip, r.Method, r.URL.Path)
				w.Header().Set("Retry-After", "60")
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Cleanup периодически удаляет клиентов, не обращавшихся дольше idle
// Блокируется до отмены контекста
func (rl *RateLimiter) Cleanup(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evict(idle)
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) evict(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-idle)
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(threshold) {
			delete(rl.visitors, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
