package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном времени (ожидается HH:MM)
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
)

// Request модели

// CreateSlotRequest запрос на создание слота
// Вместимость по умолчанию: 8 одноместных и 1 двухместный чар
type CreateSlotRequest struct {
	Date           string `json:"date"`      // "2025-07-14"
	StartTime      string `json:"startTime"` // "14:00"
	EndTime        string `json:"endTime"`   // "15:30"
	CapacitySimple *int   `json:"capacitySimple,omitempty"`
	CapacityDouble *int   `json:"capacityDouble,omitempty"`
}

// ToDomainSlot конвертирует запрос в domain модель
func (r *CreateSlotRequest) ToDomainSlot() (*domain.Slot, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := parseTime(r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := parseTime(r.EndTime)
	if err != nil {
		return nil, err
	}

	slot := &domain.Slot{
		ID:             uuid.New(),
		Date:           date,
		Start:          start,
		End:            end,
		CapacitySimple: domain.DefaultCapacitySimple,
		CapacityDouble: domain.DefaultCapacityDouble,
		Bookings:       []*domain.Booking{},
	}
	if r.CapacitySimple != nil {
		slot.CapacitySimple = *r.CapacitySimple
	}
	if r.CapacityDouble != nil {
		slot.CapacityDouble = *r.CapacityDouble
	}

	return slot, nil
}

// UpdateSlotRequest запрос на обновление слота (только переданные поля)
type UpdateSlotRequest struct {
	Date           *string `json:"date,omitempty"`
	StartTime      *string `json:"startTime,omitempty"`
	EndTime        *string `json:"endTime,omitempty"`
	CapacitySimple *int    `json:"capacitySimple,omitempty"`
	CapacityDouble *int    `json:"capacityDouble,omitempty"`
}

// ApplyTo применяет изменения к слоту
func (r *UpdateSlotRequest) ApplyTo(slot *domain.Slot) error {
	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return err
		}
		slot.Date = date
	}
	if r.StartTime != nil {
		start, err := parseTime(*r.StartTime)
		if err != nil {
			return err
		}
		slot.Start = start
	}
	if r.EndTime != nil {
		end, err := parseTime(*r.EndTime)
		if err != nil {
			return err
		}
		slot.End = end
	}
	if r.CapacitySimple != nil {
		slot.CapacitySimple = *r.CapacitySimple
	}
	if r.CapacityDouble != nil {
		slot.CapacityDouble = *r.CapacityDouble
	}
	return nil
}

// Response модели

// SlotResponse слот с вычисленным состоянием (админка)
type SlotResponse struct {
	ID              string            `json:"id"`
	Date            string            `json:"date"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime"`
	DurationMinutes int               `json:"durationMinutes"`
	CapacitySimple  int               `json:"capacitySimple"`
	CapacityDouble  int               `json:"capacityDouble"`
	Status          string            `json:"status"`
	SimpleBooked    int               `json:"simpleBooked"`
	DoubleBooked    int               `json:"doubleBooked"`
	SimpleAvailable int               `json:"simpleAvailable"` // может быть отрицательным после уменьшения вместимости
	DoubleAvailable int               `json:"doubleAvailable"`
	Overbooked      bool              `json:"overbooked"`
	Bookings        []BookingResponse `json:"bookings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse бронирование внутри слота
type BookingResponse struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	SimpleChars int       `json:"simpleChars"`
	DoubleChars int       `json:"doubleChars"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// DeleteSlotResponse ответ на удаление слота
type DeleteSlotResponse struct {
	DeletedBookings int64 `json:"deletedBookings"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	booked := s.BookedCount()
	available := s.AvailableCount()

	resp := &SlotResponse{
		ID:              s.ID.String(),
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.Start.String(),
		EndTime:         s.End.String(),
		DurationMinutes: int(s.Duration().Minutes()),
		CapacitySimple:  s.CapacitySimple,
		CapacityDouble:  s.CapacityDouble,
		Status:          string(s.Status()),
		SimpleBooked:    booked.SimpleBooked,
		DoubleBooked:    booked.DoubleBooked,
		SimpleAvailable: available.SimpleAvailable,
		DoubleAvailable: available.DoubleAvailable,
		Overbooked:      s.IsOverbooked(),
		Bookings:        make([]BookingResponse, 0, len(s.Bookings)),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	for _, b := range s.Bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:          b.ID.String(),
			UserName:    b.UserName,
			Email:       b.Email,
			Phone:       b.Phone,
			SimpleChars: b.SimpleChars,
			DoubleChars: b.DoubleChars,
			CreatedAt:   b.CreatedAt,
		})
	}

	return resp
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}

// ParseDate разбирает дату YYYY-MM-DD в нормализованную дату
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return domain.NormalizeDate(date), nil
}

func parseTime(value string) (types.TimeOfDay, error) {
	t, err := types.NewTimeOfDayFromString(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return t, nil
}
