package create_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// normalizeRequest убирает пробелы по краям контактных данных
func normalizeRequest(req *Request) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == uuid.Nil {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if err := domain.ValidateCustomer(req.UserName, req.Email, req.Phone); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := domain.ValidateChars(req.SimpleChars, req.DoubleChars); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}
