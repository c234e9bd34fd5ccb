package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/GEV-BookingService/internal/api/handlers"
)

const (
	msgMissingToken = "Authentification requise."
	msgInvalidToken = "Session expirée ou invalide. Veuillez vous reconnecter."
)

// TokenVerifier проверяет токен администратора
type TokenVerifier interface {
	Verify(token string) error
}

// Logger интерфейс логгера middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с валидным заголовком Authorization: Bearer <token>
func AdminAuth(verifier TokenVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("AdminAuth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if err := verifier.Verify(token); err != nil {
				logger.Warn("AdminAuth: rejected token: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
