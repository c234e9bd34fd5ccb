package get_calendar

import (
	"fmt"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// normalizeWeeks проверяет количество недель и подставляет значение по умолчанию
func normalizeWeeks(weeks int) (int, error) {
	if weeks == 0 {
		return domain.DefaultCalendarWeeks, nil
	}

	if weeks < 0 || weeks > domain.MaxCalendarWeeks {
		return 0, fmt.Errorf("%w: weeks must be between 1 and %d", ErrInvalidInput, domain.MaxCalendarWeeks)
	}

	return weeks, nil
}
