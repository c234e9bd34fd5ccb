package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/GEV-BookingService/internal/service/slots/models"
)

// Service сервис управления слотами (админка)
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает новый слот
// Проверяет, что конец позже начала и вместимости неотрицательны
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot date=%s start=%s end=%s", req.Date, req.StartTime, req.EndTime)

	slot, err := req.ToDomainSlot()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := domain.ValidateSlotShape(slot); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created slot id=%s", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот с бронированиями
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// List получает слоты за период, отсортированные по дате и времени начала
func (s *Service) List(ctx context.Context, filter domain.SlotFilter) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// Update изменяет дату, время и вместимость слота
// Вместимость можно уменьшить ниже уже забронированного: слот становится переполненным,
// доступность уходит в минус, бронирования не удаляются
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: updating slot id=%s", id)

	var updated *domain.Slot
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Update - get slot: %w", ErrInternal, err)
		}

		if err := req.ApplyTo(slot); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if err := domain.ValidateSlotShape(slot); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		updated, err = s.slotRepo.Update(ctx, slot)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			s.logger.Warn("Update: slot id=%s not found", id)
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("Update: validation failed for slot id=%s: %v", id, err)
		default:
			s.logger.Error("Update: failed for slot id=%s: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: Update - transaction: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	if updated.IsOverbooked() {
		available := updated.AvailableCount()
		s.logger.Warn("Update: slot id=%s is overbooked (simple=%d, double=%d)",
			id, available.SimpleAvailable, available.DoubleAvailable)
	}

	s.logger.Info("Update: successfully updated slot id=%s", id)
	return models.FromDomainSlot(updated), nil
}

// Delete удаляет слот вместе со всеми его бронированиями
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.DeleteSlotResponse, error) {
	s.logger.Info("Delete: deleting slot id=%s", id)

	var deleted int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.slotRepo.Delete(ctx, id)
		return err
	})

	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%s with %d bookings", id, deleted)
	return &models.DeleteSlotResponse{DeletedBookings: deleted}, nil
}
