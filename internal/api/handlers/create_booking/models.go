package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	createBooking "github.com/m04kA/GEV-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID      string `json:"slotId"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SimpleChars int    `json:"simpleChars"`
	DoubleChars int    `json:"doubleChars"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	SlotID          string `json:"slotId"`
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	SimpleChars     int    `json:"simpleChars"`
	DoubleChars     int    `json:"doubleChars"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	SimpleRemaining int    `json:"simpleRemaining"`
	DoubleRemaining int    `json:"doubleRemaining"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	slotID, err := uuid.Parse(r.SlotID)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SlotID:      slotID,
		UserName:    r.UserName,
		Email:       r.Email,
		Phone:       r.Phone,
		SimpleChars: r.SimpleChars,
		DoubleChars: r.DoubleChars,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		SlotID:          resp.SlotID.String(),
		UserName:        resp.UserName,
		Email:           resp.Email,
		SimpleChars:     resp.SimpleChars,
		DoubleChars:     resp.DoubleChars,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		SimpleRemaining: resp.SimpleRemaining,
		DoubleRemaining: resp.DoubleRemaining,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
