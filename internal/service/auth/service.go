package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/GEV-BookingService/internal/service/auth/models"
)

// AdminSubject subject токена администратора
const AdminSubject = "admin"

// Service сервис аутентификации администратора
// Пароль хранится только в виде bcrypt-хэша, сессия - подписанный HS256 JWT
type Service struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(passwordHash, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
		logger:       logger,
	}
}

// Login проверяет пароль и выдает токен
func (s *Service) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password == "" {
		s.logger.Warn("Login: empty password")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("Login: wrong admin password")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: bcrypt error: %v", err)
		return nil, fmt.Errorf("%w: Login - compare hash: %v", ErrInternal, err)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   AdminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin token issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify проверяет подпись, срок действия и subject токена
func (s *Service) Verify(tokenString string) error {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject != AdminSubject {
		return fmt.Errorf("%w: unexpected subject %q", ErrInvalidToken, claims.Subject)
	}

	return nil
}
