package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/GEV-BookingService/pkg/types"
)

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	args := m.Called(ctx, filter)
	if s, ok := args.Get(0).([]*domain.Slot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Slot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Среда 16/07/2025 12:00 Paris
var testNow = time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *mockSlotRepository) {
	t.Helper()

	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	repo := &mockSlotRepository{}
	uc := NewUseCase(repo, paris, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc, repo
}

func slotAt(day int, start types.TimeOfDay, bookings ...*domain.Booking) *domain.Slot {
	return &domain.Slot{
		ID:             uuid.New(),
		Date:           time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC),
		Start:          start,
		End:            start + 90,
		CapacitySimple: 8,
		CapacityDouble: 1,
		Bookings:       bookings,
	}
}

func TestExecute_GroupsByWeekAndDay(t *testing.T) {
	uc, repo := newTestUseCase(t)

	// 10:00 today, already started
	started := slotAt(16, 600)
	full := slotAt(16, 900, &domain.Booking{SimpleChars: 8, DoubleChars: 1})
	afternoon := slotAt(16, 840)
	evening := slotAt(16, 1020)
	friday := slotAt(18, 600, &domain.Booking{SimpleChars: 7})
	nextWeek := slotAt(22, 600)

	from := time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.SlotFilter) bool {
		return f.From.Equal(from) && f.To.Equal(to)
	})).Return([]*domain.Slot{evening, started, full, afternoon, friday, nextWeek}, nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Weeks, 2)

	first := resp.Weeks[0]
	assert.Equal(t, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), first.StartDate)
	require.Len(t, first.Days, 2)

	assert.Equal(t, from, first.Days[0].Date)
	require.Len(t, first.Days[0].Slots, 2)
	assert.Equal(t, afternoon.ID, first.Days[0].Slots[0].ID)
	assert.Equal(t, evening.ID, first.Days[0].Slots[1].ID)

	fridaySlot := first.Days[1].Slots[0]
	assert.Equal(t, domain.PublicStatusAlmostFull, fridaySlot.Status)
	assert.Equal(t, 2, fridaySlot.TotalAvailable)
	assert.Equal(t, 1, fridaySlot.SimpleAvailable)
	assert.Equal(t, 1, fridaySlot.DoubleAvailable)

	assert.Equal(t, time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), resp.Weeks[1].StartDate)
	assert.Equal(t, nextWeek.ID, resp.Weeks[1].Days[0].Slots[0].ID)
}

func TestExecute_SkipsOverbookedSlot(t *testing.T) {
	uc, repo := newTestUseCase(t)

	overbooked := slotAt(17, 600, &domain.Booking{SimpleChars: 9})
	overbooked.CapacitySimple = 8
	overbooked.CapacityDouble = 1
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Slot{overbooked}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Weeks: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Weeks)
}

func TestExecute_Weeks(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.SlotFilter) bool {
		return f.To.Equal(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC))
	})).Return([]*domain.Slot{}, nil)

	_, err := uc.Execute(context.Background(), &Request{Weeks: 1})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{Weeks: domain.MaxCalendarWeeks + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Weeks: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc, repo := newTestUseCase(t)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetSlot(t *testing.T) {
	uc, repo := newTestUseCase(t)

	slot := slotAt(16, 600, &domain.Booking{SimpleChars: 3, Email: "jeanne@example.fr"})
	repo.On("GetByID", mock.Anything, slot.ID).Return(slot, nil)

	got, err := uc.GetSlot(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.True(t, got.Started)
	assert.Equal(t, 6, got.TotalAvailable)
	assert.Equal(t, domain.PublicStatusAvailable, got.Status)

	missing := uuid.New()
	repo.On("GetByID", mock.Anything, missing).Return(nil, slotRepo.ErrSlotNotFound)
	_, err = uc.GetSlot(context.Background(), missing)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, startOfWeek(monday))
	assert.Equal(t, monday, startOfWeek(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), startOfWeek(time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)))
}
