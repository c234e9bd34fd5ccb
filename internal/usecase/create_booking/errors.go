package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotStarted возвращается, когда слот уже начался и больше не принимает бронирования
	ErrSlotStarted = errors.New("create_booking: slot has already started")

	// ErrCapacityExceeded возвращается, когда запрошенных чаров больше, чем свободно в слоте
	ErrCapacityExceeded = errors.New("create_booking: not enough vehicles available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Метки метрик
const (
	sourcePublic         = "public"
	rejectReasonCapacity = "capacity"
	rejectReasonStarted  = "slot_started"
)
