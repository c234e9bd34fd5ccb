package get_weather

import (
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
)

const msgWeatherUnavailable = "Météo indisponible pour le moment."

type Handler struct {
	service WeatherService
	logger  Logger
}

func NewHandler(service WeatherService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/weather
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weather, err := h.service.Current(r.Context())
	if err != nil {
		h.logger.Error("GET /weather - Weather unavailable: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgWeatherUnavailable)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	handlers.RespondJSON(w, http.StatusOK, weather)
}
