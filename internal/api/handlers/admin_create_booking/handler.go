package admin_create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidSlotID      = "Identifiant de créneau invalide."
	msgInvalidInput       = "Veuillez vérifier les informations de la réservation."
	msgSlotNotFound       = "Créneau introuvable."
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

// Handle POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSlotID):
			h.logger.Warn("POST /admin/bookings - Invalid slot id: %q", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidInput))

		case errors.Is(err, bookings.ErrSlotNotFound):
			h.logger.Warn("POST /admin/bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookings.ErrCapacityExceeded):
			h.logger.Warn("POST /admin/bookings - Capacity exceeded: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /admin/bookings - Failed to create booking: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings - Booking created successfully: booking_id=%s, slot_id=%s", result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
