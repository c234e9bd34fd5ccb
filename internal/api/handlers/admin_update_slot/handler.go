package admin_update_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/slots"
	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidSlotID      = "Identifiant de créneau invalide."
	msgSlotNotFound       = "Créneau introuvable."
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

// Handle PUT /api/v1/admin/slots/{slotId}
// Вместимость можно уменьшить ниже уже забронированного: слот помечается overbooked
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := handlers.PathUUID(r, "slotId")
	if err != nil {
		h.logger.Warn("PUT /admin/slots/{slotId} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req models.UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slots/{slotId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /admin/slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, models.ErrInvalidDate):
			h.logger.Warn("PUT /admin/slots/{slotId} - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, models.ErrInvalidTime):
			h.logger.Warn("PUT /admin/slots/{slotId} - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /admin/slots/{slotId} - Invalid input: slot_id=%s, error=%v", slotID, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidInput))

		default:
			h.logger.Error("PUT /admin/slots/{slotId} - Failed to update slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/slots/{slotId} - Slot updated successfully: slot_id=%s, overbooked=%t", slotID, result.Overbooked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
