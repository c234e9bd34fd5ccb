package admin_create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/slots"
	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidDate        = "Date invalide, format attendu : AAAA-MM-JJ."
	msgInvalidTime        = "Heure invalide, format attendu : HH:MM."
	msgInvalidInput       = "Veuillez vérifier les informations du créneau."
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

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidDate):
			h.logger.Warn("POST /admin/slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, models.ErrInvalidTime):
			h.logger.Warn("POST /admin/slots - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidInput))

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created successfully: slot_id=%s, date=%s %s-%s",
		result.ID, result.Date, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
