package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrCapacityExceeded возвращается, когда запрошенных чаров больше, чем свободно в слоте
	ErrCapacityExceeded = errors.New("not enough vehicles available in slot")

	// ErrSlotEnded возвращается при переносе бронирования в завершившийся слот прошлого дня
	ErrSlotEnded = errors.New("slot has already ended")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.bookings: internal error")
)

// Причины отказа в бронировании (метка метрики)
const (
	rejectReasonCapacity = "capacity"
	rejectReasonEnded    = "slot_ended"
)

// Источник бронирования (метка метрики)
const sourceAdmin = "admin"
