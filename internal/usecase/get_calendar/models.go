package get_calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/pkg/types"
)

// Request модель запроса календаря
type Request struct {
	Weeks int // Количество недель начиная с текущей (0 - по умолчанию)
}

// Response календарь доступных слотов, сгруппированный по неделям и дням
// Недели без доступных слотов не возвращаются
type Response struct {
	Weeks []Week
}

// Week неделя календаря (с понедельника)
type Week struct {
	StartDate time.Time // Понедельник недели
	Days      []Day
}

// Day день с доступными слотами
type Day struct {
	Date  time.Time
	Slots []Slot
}

// Slot публичное представление слота (без данных клиентов)
type Slot struct {
	ID              uuid.UUID
	Date            time.Time
	StartTime       types.TimeOfDay
	EndTime         types.TimeOfDay
	DurationMinutes int
	Status          domain.PublicStatus
	TotalAvailable  int
	TotalCapacity   int
	PercentageUsed  float64
	SimpleAvailable int // Не меньше 0
	DoubleAvailable int // Не меньше 0
	Started         bool
}
