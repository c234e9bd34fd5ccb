package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// PathUUID читает UUID из переменной маршрута
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id, nil
}

// QueryDate читает необязательную дату YYYY-MM-DD из query параметра
// Возвращает nil, если параметр не передан
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}

	date = domain.NormalizeDate(date)
	return &date, nil
}
