package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования с сайта
type Request struct {
	SlotID      uuid.UUID // ID выбранного слота
	UserName    string    // Имя клиента
	Email       string    // Email клиента
	Phone       string    // Телефон клиента
	SimpleChars int       // Количество одноместных чаров
	DoubleChars int       // Количество двухместных чаров
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID // ID созданного бронирования
	SlotID      uuid.UUID // ID слота
	UserName    string    // Имя клиента
	Email       string    // Email клиента
	SimpleChars int       // Одноместных чаров
	DoubleChars int       // Двухместных чаров

	// Данные слота на момент бронирования
	Date            time.Time       // Дата слота
	StartTime       types.TimeOfDay // Время начала
	EndTime         types.TimeOfDay // Время окончания
	SimpleRemaining int             // Осталось одноместных после бронирования
	DoubleRemaining int             // Осталось двухместных после бронирования

	CreatedAt time.Time // Время создания
}
