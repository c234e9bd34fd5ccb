package admin_login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/GEV-BookingService/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newHandler(t *testing.T) *Handler {
	hash, err := bcrypt.GenerateFromPassword([]byte("glisse2025"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewHandler(auth.NewService(string(hash), "test-secret", time.Hour, nopLogger{}), nopLogger{})
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	h := newHandler(t)

	rec := serve(h, `{"password":"glisse2025"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"`)
	assert.Contains(t, rec.Body.String(), `"expiresAt":"`)

	rec = serve(h, `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgWrongPassword)

	rec = serve(h, `{"pass":"glisse2025"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
