package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

var (
	// ErrInvalidSlotID возвращается при некорректном идентификаторе слота
	ErrInvalidSlotID = errors.New("invalid slot id")
)

// Request модели

// CreateBookingRequest запрос на создание бронирования из админки
type CreateBookingRequest struct {
	SlotID      string `json:"slotId"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SimpleChars int    `json:"simpleChars"`
	DoubleChars int    `json:"doubleChars"`
}

// ToDomainBooking конвертирует запрос в domain модель
func (r *CreateBookingRequest) ToDomainBooking() (*domain.Booking, error) {
	slotID, err := ParseSlotID(r.SlotID)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:          uuid.New(),
		SlotID:      slotID,
		UserName:    strings.TrimSpace(r.UserName),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		SimpleChars: r.SimpleChars,
		DoubleChars: r.DoubleChars,
	}, nil
}

// UpdateBookingRequest запрос на изменение бронирования (только переданные поля)
// Смена slotId переносит бронирование в другой слот
type UpdateBookingRequest struct {
	SlotID      *string `json:"slotId,omitempty"`
	UserName    *string `json:"userName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	SimpleChars *int    `json:"simpleChars,omitempty"`
	DoubleChars *int    `json:"doubleChars,omitempty"`
}

// TargetSlotID возвращает слот, в котором окажется бронирование после изменения
func (r *UpdateBookingRequest) TargetSlotID(current uuid.UUID) (uuid.UUID, error) {
	if r.SlotID == nil {
		return current, nil
	}
	return ParseSlotID(*r.SlotID)
}

// ApplyTo применяет изменения к бронированию
func (r *UpdateBookingRequest) ApplyTo(booking *domain.Booking, targetSlotID uuid.UUID) {
	booking.SlotID = targetSlotID
	if r.UserName != nil {
		booking.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.Email != nil {
		booking.Email = strings.TrimSpace(*r.Email)
	}
	if r.Phone != nil {
		booking.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.SimpleChars != nil {
		booking.SimpleChars = *r.SimpleChars
	}
	if r.DoubleChars != nil {
		booking.DoubleChars = *r.DoubleChars
	}
}

// ListBookingsRequest запрос на получение списка бронирований
// Email выбирает бронирования одного клиента, иначе применяется период по дате слота
type ListBookingsRequest struct {
	From  *time.Time
	To    *time.Time
	Email *string
}

// Response модели

// BookingResponse бронирование для таблицы резерваций
type BookingResponse struct {
	ID          string       `json:"id"`
	SlotID      string       `json:"slotId"`
	UserName    string       `json:"userName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	SimpleChars int          `json:"simpleChars"`
	DoubleChars int          `json:"doubleChars"`
	Slot        *SlotSummary `json:"slot,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SlotSummary краткие данные слота бронирования
type SlotSummary struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse статистика для дашборда админки
type DashboardResponse struct {
	TotalBookings        int                `json:"totalBookings"`
	TotalSimpleBooked    int                `json:"totalSimpleBooked"`
	TotalDoubleBooked    int                `json:"totalDoubleBooked"`
	EstimatedRevenue     float64            `json:"estimatedRevenue"`
	TotalHours           int                `json:"totalHours"`
	UniqueCustomers      int                `json:"uniqueCustomers"`
	TotalSimpleAvailable int                `json:"totalSimpleAvailable"`
	TotalDoubleAvailable int                `json:"totalDoubleAvailable"`
	Chart                []ChartDayResponse `json:"chart"`
}

// ChartDayResponse количество бронирований за день
type ChartDayResponse struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"` // "lun.", "mar.", ...
	Bookings int    `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID.String(),
		SlotID:      b.SlotID.String(),
		UserName:    b.UserName,
		Email:       b.Email,
		Phone:       b.Phone,
		SimpleChars: b.SimpleChars,
		DoubleChars: b.DoubleChars,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingWithSlot конвертирует бронирование вместе с его слотом
func FromDomainBookingWithSlot(b *domain.Booking, s *domain.Slot) *BookingResponse {
	resp := FromDomainBooking(b)
	if resp == nil || s == nil {
		return resp
	}

	resp.Slot = &SlotSummary{
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.Start.String(),
		EndTime:   s.End.String(),
	}
	return resp
}

// FromDomainBookingList конвертирует список бронирований без данных слота
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainBookingWithSlotList конвертирует таблицу резерваций
func FromDomainBookingWithSlotList(items []*domain.BookingWithSlot) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(items)),
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		if bookingResp := FromDomainBookingWithSlot(item.Booking, item.Slot); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainDashboard конвертирует статистику дашборда
func FromDomainDashboard(stats domain.DashboardStats) *DashboardResponse {
	resp := &DashboardResponse{
		TotalBookings:        stats.TotalBookings,
		TotalSimpleBooked:    stats.TotalSimpleBooked,
		TotalDoubleBooked:    stats.TotalDoubleBooked,
		EstimatedRevenue:     stats.EstimatedRevenue,
		TotalHours:           stats.TotalHours,
		UniqueCustomers:      stats.UniqueCustomers,
		TotalSimpleAvailable: stats.TotalSimpleAvailable,
		TotalDoubleAvailable: stats.TotalDoubleAvailable,
		Chart:                make([]ChartDayResponse, 0, len(stats.Chart)),
	}

	for _, day := range stats.Chart {
		resp.Chart = append(resp.Chart, ChartDayResponse{
			Date:     day.Date.Format(domain.DateFormat),
			Weekday:  day.Weekday,
			Bookings: day.Bookings,
		})
	}

	return resp
}

// ParseSlotID разбирает идентификатор слота
func ParseSlotID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidSlotID, value)
	}
	return id, nil
}
