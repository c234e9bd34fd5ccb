package admin_delete_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/slots"
)

const (
	msgInvalidSlotID = "Identifiant de créneau invalide."
	msgSlotNotFound  = "Créneau introuvable."
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

// Handle DELETE /api/v1/admin/slots/{slotId}
// Удаляет слот вместе с его бронированиями
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := handlers.PathUUID(r, "slotId")
	if err != nil {
		h.logger.Warn("DELETE /admin/slots/{slotId} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.Delete(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			h.logger.Warn("DELETE /admin/slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("DELETE /admin/slots/{slotId} - Failed to delete slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/slots/{slotId} - Slot deleted successfully: slot_id=%s, deleted_bookings=%d",
		slotID, result.DeletedBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
