package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
)

// UseCase use case публичного календаря бронирования
type UseCase struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает доступные слоты на ближайшие недели, начиная с текущей
// Слот попадает в календарь, если он еще не начался и в нем остались свободные чары
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	weeks, err := normalizeWeeks(req.Weeks)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем период: с сегодняшнего дня до воскресенья последней недели
	now := uc.timeProvider.Now()
	today := domain.Today(now, uc.location)
	firstMonday := startOfWeek(today)
	lastDay := firstMonday.AddDate(0, 0, 7*weeks-1)

	uc.logger.Info("GetCalendar: weeks=%d, period=%s to %s",
		weeks, today.Format(domain.DateFormat), lastDay.Format(domain.DateFormat))

	// 3. Получаем слоты с бронированиями за период
	slots, err := uc.slotRepo.List(ctx, domain.SlotFilter{From: &today, To: &lastDay})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 4. Группируем по неделям и дням
	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Start < slots[j].Start
	})
	result := &Response{Weeks: buildWeeks(slots, firstMonday, weeks, now, uc.location)}

	uc.logger.Info("GetCalendar: %d slots fetched, %d weeks with availability", len(slots), len(result.Weeks))
	return result, nil
}

// GetSlot возвращает публичное состояние одного слота (без данных клиентов)
func (uc *UseCase) GetSlot(ctx context.Context, id uuid.UUID) (*Slot, error) {
	slot, err := uc.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("GetSlot: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("GetSlot: failed to get slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	result := toSlot(slot, uc.timeProvider.Now(), uc.location)
	return &result, nil
}
