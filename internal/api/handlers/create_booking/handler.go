package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/GEV-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidSlotID      = "Créneau invalide."
	msgInvalidInput       = "Veuillez vérifier les informations saisies."
	msgSlotNotFound       = "Ce créneau n'existe pas ou a été supprimé."
	msgSlotStarted        = "Ce créneau a déjà commencé, il n'est plus possible de le réserver."
	msgCapacityExceeded   = "Il n'y a plus assez de chars disponibles sur ce créneau."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid slot id: %q", req.SlotID)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: slot_id=%s, error=%v", useCaseReq.SlotID, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidInput))

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", useCaseReq.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotStarted):
			h.logger.Warn("POST /bookings - Slot already started: slot_id=%s", useCaseReq.SlotID)
			handlers.RespondConflict(w, msgSlotStarted)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: slot_id=%s, simple=%d, double=%d",
				useCaseReq.SlotID, useCaseReq.SimpleChars, useCaseReq.DoubleChars)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%s, error=%v", useCaseReq.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, slot_id=%s", result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
