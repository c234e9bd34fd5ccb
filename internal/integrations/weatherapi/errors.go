package weatherapi

import "errors"

var (
	// ErrMissingAPIKey возвращается, когда ключ WeatherAPI не настроен
	ErrMissingAPIKey = errors.New("weatherapi client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("weatherapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("weatherapi client: invalid response")
)
