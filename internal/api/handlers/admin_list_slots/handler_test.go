package admin_list_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, filter domain.SlotFilter) (*models.SlotListResponse, error) {
	args := m.Called(ctx, filter)
	resp, _ := args.Get(0).(*models.SlotListResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Period(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, nopLogger{})

	svc.On("List", mock.Anything, mock.MatchedBy(func(f domain.SlotFilter) bool {
		return f.From != nil && f.From.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To != nil && f.To.Equal(time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC))
	})).Return(&models.SlotListResponse{Slots: []models.SlotResponse{{ID: "s1", Status: "confirmed"}}}, nil)

	rec := serve(h, "/api/v1/admin/slots?from=2025-07-01&to=2025-07-31")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandle_NoFilter(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, domain.SlotFilter{}).Return(&models.SlotListResponse{Slots: []models.SlotResponse{}}, nil)

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/admin/slots")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"slots":[]}`, rec.Body.String())
}

func TestHandle_BadRequest(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/admin/slots?from=01-07-2025").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/admin/slots?to=tomorrow").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/admin/slots?from=2025-07-31&to=2025-07-01").Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandle_InternalError(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, serve(NewHandler(svc, nopLogger{}), "/api/v1/admin/slots").Code)
}
