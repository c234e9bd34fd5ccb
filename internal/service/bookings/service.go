package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
)

// Service сервис управления бронированиями (админка)
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	prices       domain.Prices
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// location - часовой пояс пляжа, в котором определяется "сегодня"
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	metrics Metrics,
	prices domain.Prices,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		prices:       prices,
		location:     location,
		logger:       logger,
	}
}

// List получает бронирования для таблицы резерваций
//
// Примеры использования:
// - Все бронирования: List(ctx, &ListBookingsRequest{})
// - Бронирования за период (по дате слота): указать From и/или To
// - Бронирования клиента: указать Email (без учета регистра, без данных слота)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Email != nil {
		s.logger.Info("List: fetching bookings for email=%s", *req.Email)

		bookings, err := s.bookingRepo.ListByEmail(ctx, *req.Email)
		if err != nil {
			s.logger.Error("List: repository error for email=%s: %v", *req.Email, err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		return models.FromDomainBookingList(bookings), nil
	}

	items, err := s.bookingRepo.ListAll(ctx, domain.SlotFilter{From: req.From, To: req.To})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(items))
	return models.FromDomainBookingWithSlotList(items), nil
}

// Create создает бронирование из админки
// Те же проверки вместимости, что и у публичного бронирования, но слот может быть уже начавшимся
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: slot=%s, simple=%d, double=%d", req.SlotID, req.SimpleChars, req.DoubleChars)

	booking, err := req.ToDomainBooking()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validateBooking(booking); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Booking
	var slot *domain.Slot
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		slot, err = s.lockSlot(ctx, booking.SlotID)
		if err != nil {
			return err
		}

		if !domain.Fits(slot.AvailableCount(), booking.SimpleChars, booking.DoubleChars) {
			s.metrics.IncBookingRejected(rejectReasonCapacity)
			return ErrCapacityExceeded
		}

		created, err = s.bookingRepo.Create(ctx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, s.handleFailure("Create", booking.SlotID, err)
	}

	s.metrics.IncBookingCreated(sourceAdmin)
	s.logger.Info("Create: successfully created booking id=%s in slot id=%s", created.ID, slot.ID)
	return models.FromDomainBookingWithSlot(created, slot), nil
}

// Update изменяет бронирование: контактные данные, количество чаров и/или слот
// Допустимое количество чаров считается через MaxBookable: при изменении в том же слоте
// собственные чары бронирования возвращаются в пул
// Перенос в слот прошлого дня, который уже завершился, запрещен
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	now := s.timeProvider.Now()

	var updated *domain.Booking
	var target *domain.Slot
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - get booking: %w", ErrInternal, err)
		}

		targetID, err := req.TargetSlotID(booking.SlotID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		target, err = s.lockSlot(ctx, targetID)
		if err != nil {
			return err
		}

		if target.ID != booking.SlotID && target.EndedBeforeToday(now, s.location) {
			s.metrics.IncBookingRejected(rejectReasonEnded)
			return ErrSlotEnded
		}

		// Лимит считается до изменения: чары бронирования еще числятся в исходном слоте
		limit := domain.MaxBookable(target, booking)

		changed := *booking
		req.ApplyTo(&changed, target.ID)
		if err := validateBooking(&changed); err != nil {
			return err
		}

		if !domain.Fits(limit, changed.SimpleChars, changed.DoubleChars) {
			s.metrics.IncBookingRejected(rejectReasonCapacity)
			return ErrCapacityExceeded
		}

		updated, err = s.bookingRepo.Update(ctx, &changed)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSlotNotFound):
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, s.handleFailure("Update", id, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s (slot id=%s)", id, target.ID)
	return models.FromDomainBookingWithSlot(updated, target), nil
}

// Delete удаляет бронирование (отмена), чары сразу освобождаются
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Dashboard считает статистику по слотам начиная с сегодняшнего дня
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	today := domain.Today(s.timeProvider.Now(), s.location)

	slots, err := s.slotRepo.List(ctx, domain.SlotFilter{From: &today})
	if err != nil {
		s.logger.Error("Dashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	stats := domain.ComputeDashboard(slots, today, s.prices, domain.DashboardChartDays)

	s.logger.Info("Dashboard: %d slots, %d bookings, %d customers",
		len(slots), stats.TotalBookings, stats.UniqueCustomers)
	return models.FromDomainDashboard(stats), nil
}

// Вспомогательные методы

// lockSlot получает слот с бронированиями и блокирует его до конца транзакции
func (s *Service) lockSlot(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: lockSlot - repository error: %w", ErrInternal, err)
	}
	return slot, nil
}

// handleFailure логирует ошибку транзакции и приводит ошибки менеджера транзакций к ErrInternal
func (s *Service) handleFailure(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrSlotNotFound),
		errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrSlotEnded),
		errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: rejected for id=%s: %v", op, id, err)
		return err
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: failed for id=%s: %v", op, id, err)
		return err
	default:
		s.logger.Error("%s: transaction failed for id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - transaction: %v", ErrInternal, op, err)
	}
}

func validateBooking(b *domain.Booking) error {
	if err := domain.ValidateCustomer(b.UserName, b.Email, b.Phone); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := domain.ValidateChars(b.SimpleChars, b.DoubleChars); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
