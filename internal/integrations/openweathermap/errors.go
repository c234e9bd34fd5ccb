package openweathermap

import "errors"

var (
	// ErrMissingAPIKey возвращается, когда ключ OpenWeatherMap не настроен
	ErrMissingAPIKey = errors.New("openweathermap client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("openweathermap client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("openweathermap client: invalid response")
)
