package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	createBooking "github.com/m04kA/GEV-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/GEV-BookingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var slotID = uuid.MustParse("5a0e2a52-8f3c-4c11-9d0b-8f8f6f0a1b01")

func body(simple, double int) string {
	return fmt.Sprintf(`{"slotId":%q,"userName":"Jeanne","email":"jeanne@example.fr","phone":"0612345678","simpleChars":%d,"doubleChars":%d}`,
		slotID, simple, double)
}

func serve(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, nopLogger{})

	bookingID := uuid.New()
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.SlotID == slotID && req.SimpleChars == 3 && req.DoubleChars == 0
	})).Return(&createBooking.Response{
		ID:              bookingID,
		SlotID:          slotID,
		UserName:        "Jeanne",
		Email:           "jeanne@example.fr",
		SimpleChars:     3,
		Date:            time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeOfDay(900),
		EndTime:         types.TimeOfDay(990),
		SimpleRemaining: 5,
		DoubleRemaining: 1,
		CreatedAt:       time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC),
	}, nil)

	rec := serve(h, body(3, 0))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+bookingID.String()+`"`)
	assert.Contains(t, rec.Body.String(), `"date":"2025-07-14"`)
	assert.Contains(t, rec.Body.String(), `"startTime":"15:00"`)
	assert.Contains(t, rec.Body.String(), `"simpleRemaining":5`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "capacity exceeded",
			err:        fmt.Errorf("%w: requested 9", createBooking.ErrCapacityExceeded),
			wantStatus: http.StatusConflict,
			wantMsg:    msgCapacityExceeded,
		},
		{
			name:       "slot started",
			err:        createBooking.ErrSlotStarted,
			wantStatus: http.StatusConflict,
			wantMsg:    msgSlotStarted,
		},
		{
			name:       "slot not found",
			err:        createBooking.ErrSlotNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgSlotNotFound,
		},
		{
			name:       "validation",
			err:        fmt.Errorf("%w: %w", createBooking.ErrInvalidInput, domain.ErrNoChars),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Veuillez sélectionner au moins un char.",
		},
		{
			name:       "internal",
			err:        createBooking.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, nopLogger{}), body(9, 0))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, `{"slotId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, `{"slotId":"not-a-uuid","simpleChars":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidSlotID)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
