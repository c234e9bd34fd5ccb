package admin_update_slot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GEV-BookingService/internal/service/slots"
	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.SlotResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/slots/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"slotId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_LowerCapacity(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()

	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateSlotRequest) bool {
		return req.CapacitySimple != nil && *req.CapacitySimple == 2 && req.Date == nil
	})).Return(&models.SlotResponse{
		ID:              id.String(),
		CapacitySimple:  2,
		SimpleAvailable: -1,
		Overbooked:      true,
		Status:          "full",
	}, nil)

	rec := serve(NewHandler(svc, nopLogger{}), id.String(), `{"capacitySimple":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"simpleAvailable":-1`)
	assert.Contains(t, rec.Body.String(), `"overbooked":true`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: slots.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "bad time", err: fmt.Errorf("%w: %w", slots.ErrInvalidInput, models.ErrInvalidTime), wantStatus: http.StatusBadRequest},
		{name: "invalid", err: slots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(svc, nopLogger{}), uuid.NewString(), `{"endTime":"18:00"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, serve(h, "nope", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, uuid.NewString(), `{"capacity":3}`).Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
