package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
)

// notifyTimeout ограничение на отправку уведомления после commit
const notifyTimeout = 10 * time.Second

// UseCase use case для создания бронирования с сайта
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	notifier     Notifier
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil - тогда уведомления не отправляются
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и запись выполняются в одной сериализуемой транзакции
// с блокировкой строки слота, поэтому параллельные бронирования не превышают вместимость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s, simple=%d, double=%d", req.SlotID, req.SimpleChars, req.DoubleChars)

	// 1. Валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var slot *domain.Slot
	var created *domain.Booking

	// 3. Транзакция: блокировка слота - проверка - запись
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error

		// 3.1. Получаем слот с бронированиями и блокируем его (FOR UPDATE)
		slot, err = uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		// 3.2. Начавшийся слот не принимает бронирования с сайта
		if slot.HasStarted(now, uc.location) {
			uc.logger.Warn("CreateBooking: slot id=%s has already started", req.SlotID)
			uc.metrics.IncBookingRejected(rejectReasonStarted)
			return ErrSlotStarted
		}

		// 3.3. Проверяем вместимость по каждой категории
		available := slot.AvailableCount()
		if !domain.Fits(available, req.SimpleChars, req.DoubleChars) {
			uc.logger.Warn("CreateBooking: capacity exceeded for slot id=%s (requested %d/%d, available %d/%d)",
				req.SlotID, req.SimpleChars, req.DoubleChars, available.SimpleAvailable, available.DoubleAvailable)
			uc.metrics.IncBookingRejected(rejectReasonCapacity)
			return ErrCapacityExceeded
		}

		// 3.4. Сохраняем бронирование
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			ID:          uuid.New(),
			SlotID:      slot.ID,
			UserName:    req.UserName,
			Email:       req.Email,
			Phone:       req.Phone,
			SimpleChars: req.SimpleChars,
			DoubleChars: req.DoubleChars,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isKnownError(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	slot.Bookings = append(slot.Bookings, created)
	uc.metrics.IncBookingCreated(sourcePublic)
	uc.logger.Info("CreateBooking: successfully created booking id=%s in slot id=%s", created.ID, slot.ID)

	// 4. Уведомление администратора (после commit, ошибки не влияют на результат)
	uc.notifyAdmin(ctx, slot, created)

	remaining := slot.AvailableCount()
	return &Response{
		ID:              created.ID,
		SlotID:          slot.ID,
		UserName:        created.UserName,
		Email:           created.Email,
		SimpleChars:     created.SimpleChars,
		DoubleChars:     created.DoubleChars,
		Date:            slot.Date,
		StartTime:       slot.Start,
		EndTime:         slot.End,
		SimpleRemaining: max(remaining.SimpleAvailable, 0),
		DoubleRemaining: max(remaining.DoubleAvailable, 0),
		CreatedAt:       created.CreatedAt,
	}, nil
}

// notifyAdmin отправляет уведомление о новом бронировании
// Запрос клиента мог уже завершиться, поэтому используется собственный таймаут
func (uc *UseCase) notifyAdmin(ctx context.Context, slot *domain.Slot, booking *domain.Booking) {
	if uc.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := uc.notifier.NotifyNewBooking(notifyCtx, slot, booking); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify admin about booking id=%s: %v", booking.ID, err)
	}
}

func isKnownError(err error) bool {
	return errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrSlotStarted) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrInternal)
}
