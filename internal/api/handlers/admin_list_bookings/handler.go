package admin_list_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "Date invalide, format attendu : AAAA-MM-JJ."
	msgInvalidPeriod = "La date de début doit précéder la date de fin."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?from=&to=&email=
// С параметром email возвращает бронирования одного клиента, период при этом не применяется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /admin/bookings - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /admin/bookings - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if from != nil && to != nil && to.Before(*from) {
		h.logger.Warn("GET /admin/bookings - Invalid period")
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	req := &models.ListBookingsRequest{From: from, To: to}
	if email := strings.TrimSpace(r.URL.Query().Get("email")); email != "" {
		req.Email = &email
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
