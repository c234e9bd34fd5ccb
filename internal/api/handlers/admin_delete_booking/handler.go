package admin_delete_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Identifiant de réservation invalide."
	msgBookingNotFound  = "Réservation introuvable."
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

// Handle DELETE /api/v1/admin/bookings/{bookingId}
// Отмена бронирования администратором, чары сразу возвращаются в слот
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		h.logger.Warn("DELETE /admin/bookings/{bookingId} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /admin/bookings/{bookingId} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /admin/bookings/{bookingId} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/bookings/{bookingId} - Booking deleted successfully: booking_id=%s", bookingID)
	w.WriteHeader(http.StatusNoContent)
}
