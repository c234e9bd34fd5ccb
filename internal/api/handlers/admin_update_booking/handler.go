package admin_update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidBookingID   = "Identifiant de réservation invalide."
	msgInvalidSlotID      = "Identifiant de créneau invalide."
	msgInvalidInput       = "Veuillez vérifier les informations de la réservation."
	msgBookingNotFound    = "Réservation introuvable."
	msgSlotNotFound       = "Créneau introuvable."
	msgSlotEnded          = "Ce créneau est déjà passé."
	msgCapacityExceeded   = "Il n'y a plus assez de chars disponibles sur ce créneau."
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

// Handle PUT /api/v1/admin/bookings/{bookingId}
// Изменение slotId переносит бронирование в другой слот
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{bookingId} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{bookingId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSlotID):
			h.logger.Warn("PUT /admin/bookings/{bookingId} - Invalid slot id: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/bookings/{bookingId} - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidInput))

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/bookings/{bookingId} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrSlotNotFound):
			h.logger.Warn("PUT /admin/bookings/{bookingId} - Target slot not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookings.ErrSlotEnded):
			h.logger.Warn("PUT /admin/bookings/{bookingId} - Target slot ended: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotEnded)

		case errors.Is(err, bookings.ErrCapacityExceeded):
			h.logger.Warn("PUT /admin/bookings/{bookingId} - Capacity exceeded: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("PUT /admin/bookings/{bookingId} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{bookingId} - Booking updated successfully: booking_id=%s, slot_id=%s", bookingID, result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
