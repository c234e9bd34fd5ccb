package get_calendar

import (
	"github.com/m04kA/GEV-BookingService/internal/domain"
	getCalendar "github.com/m04kA/GEV-BookingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Weeks []WeekResponse `json:"weeks"`
}

// WeekResponse неделя календаря
type WeekResponse struct {
	StartDate string        `json:"startDate"`
	Days      []DayResponse `json:"days"`
}

// DayResponse день с доступными слотами
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse публичное состояние слота
type SlotResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalAvailable  int     `json:"totalAvailable"`
	TotalCapacity   int     `json:"totalCapacity"`
	PercentageUsed  float64 `json:"percentageUsed"`
	SimpleAvailable int     `json:"simpleAvailable"`
	DoubleAvailable int     `json:"doubleAvailable"`
	Started         bool    `json:"started"`
}

// FromUseCaseResponse конвертирует календарь use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	result := &CalendarResponse{
		Weeks: make([]WeekResponse, 0, len(resp.Weeks)),
	}

	for _, week := range resp.Weeks {
		weekResp := WeekResponse{
			StartDate: week.StartDate.Format(domain.DateFormat),
			Days:      make([]DayResponse, 0, len(week.Days)),
		}

		for _, day := range week.Days {
			dayResp := DayResponse{
				Date:  day.Date.Format(domain.DateFormat),
				Slots: make([]SlotResponse, 0, len(day.Slots)),
			}
			for i := range day.Slots {
				dayResp.Slots = append(dayResp.Slots, *FromUseCaseSlot(&day.Slots[i]))
			}
			weekResp.Days = append(weekResp.Days, dayResp)
		}

		result.Weeks = append(result.Weeks, weekResp)
	}

	return result
}

// FromUseCaseSlot конвертирует публичный слот use case в HTTP response
func FromUseCaseSlot(slot *getCalendar.Slot) *SlotResponse {
	return &SlotResponse{
		ID:              slot.ID.String(),
		Date:            slot.Date.Format(domain.DateFormat),
		StartTime:       slot.StartTime.String(),
		EndTime:         slot.EndTime.String(),
		DurationMinutes: slot.DurationMinutes,
		Status:          string(slot.Status),
		TotalAvailable:  slot.TotalAvailable,
		TotalCapacity:   slot.TotalCapacity,
		PercentageUsed:  slot.PercentageUsed,
		SimpleAvailable: slot.SimpleAvailable,
		DoubleAvailable: slot.DoubleAvailable,
		Started:         slot.Started,
	}
}
