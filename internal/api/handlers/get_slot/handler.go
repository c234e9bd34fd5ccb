package get_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	calendarHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/get_calendar"
	getCalendar "github.com/m04kA/GEV-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidSlotID = "Créneau invalide."
	msgSlotNotFound  = "Ce créneau n'existe pas ou a été supprimé."
)

type Handler struct {
	useCase GetSlotUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}
// Возвращает актуальное состояние слота перед подтверждением бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["slotId"]
	slotID, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("GET /slots/{slotId} - Invalid slot id: %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	slot, err := h.useCase.GetSlot(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, getCalendar.ErrSlotNotFound) {
			h.logger.Warn("GET /slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /slots/{slotId} - Failed to get slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, calendarHandler.FromUseCaseSlot(slot))
}
