package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности зависимости (БД)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

// Response тело ответа health-check
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /health - Database unavailable: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: "degraded", Database: "down"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Database: "up"})
}
