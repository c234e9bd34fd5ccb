package get_weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/internal/service/weather"
)

type stubService struct {
	weather *domain.Weather
	err     error
}

func (s stubService) Current(context.Context) (*domain.Weather, error) {
	return s.weather, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(NewHandler(stubService{weather: &domain.Weather{
		WindKph:   24,
		WindDir:   "O",
		Condition: domain.WeatherSunny,
		Source:    "weatherapi",
	}}, nopLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"wind_kph":24`)
	assert.Contains(t, rec.Body.String(), `"wind_dir":"O"`)
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
}

func TestHandle_Unavailable(t *testing.T) {
	rec := serve(NewHandler(stubService{err: weather.ErrUnavailable}, nopLogger{}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), msgWeatherUnavailable)
}
