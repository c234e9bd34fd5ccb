package admin_list_slots

import (
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/domain"
)

const (
	msgInvalidDate   = "Date invalide, format attendu : AAAA-MM-JJ."
	msgInvalidPeriod = "La date de début doit précéder la date de fin."
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/slots?from=2025-07-01&to=2025-07-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /admin/slots - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /admin/slots - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if from != nil && to != nil && to.Before(*from) {
		h.logger.Warn("GET /admin/slots - Invalid period: from=%s, to=%s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.List(r.Context(), domain.SlotFilter{From: from, To: to})
	if err != nil {
		h.logger.Error("GET /admin/slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
