package contact

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDeliveryFailed возвращается, когда ни один канал не доставил сообщение
	ErrDeliveryFailed = errors.New("service.contact: all delivery channels failed")
)
