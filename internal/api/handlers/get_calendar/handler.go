package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/GEV-BookingService/internal/usecase/get_calendar"
)

const msgInvalidWeeks = "Nombre de semaines invalide."

type Handler struct {
	useCase      GetCalendarUseCase
	defaultWeeks int
	logger       Logger
}

// NewHandler defaultWeeks используется, когда параметр weeks не передан
func NewHandler(useCase GetCalendarUseCase, defaultWeeks int, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		defaultWeeks: defaultWeeks,
		logger:       logger,
	}
}

// Handle GET /api/v1/calendar?weeks=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weeks := h.defaultWeeks
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.logger.Warn("GET /calendar - Invalid weeks parameter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidWeeks)
			return
		}
		weeks = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Weeks: weeks})
	if err != nil {
		if errors.Is(err, getCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /calendar - Invalid input: weeks=%d, error=%v", weeks, err)
			handlers.RespondBadRequest(w, msgInvalidWeeks)
			return
		}
		h.logger.Error("GET /calendar - Failed to build calendar: weeks=%d, error=%v", weeks, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
