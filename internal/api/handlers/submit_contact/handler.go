package submit_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	"github.com/m04kA/GEV-BookingService/internal/service/contact"
	"github.com/m04kA/GEV-BookingService/internal/service/contact/models"
)

const (
	msgInvalidRequestBody = "Requête invalide."
	msgInvalidInput       = "Veuillez vérifier les informations saisies."
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidInput))

		case errors.Is(err, contact.ErrDeliveryFailed) && result != nil:
			h.logger.Error("POST /contact - Delivery failed: %v", err)
			handlers.RespondJSON(w, http.StatusBadGateway, result)

		default:
			h.logger.Error("POST /contact - Failed to submit message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message accepted: channel=%s", result.Channel)
	handlers.RespondJSON(w, http.StatusOK, result)
}
