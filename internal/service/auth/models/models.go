package models

import "time"

// LoginRequest запрос входа в админку
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse выданный токен администратора
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
