package bookings

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
	bookingRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/GEV-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GEV-BookingService/pkg/ptr"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	args := m.Called(ctx, email)
	if b, ok := args.Get(0).([]*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) ListAll(ctx context.Context, filter domain.SlotFilter) ([]*domain.BookingWithSlot, error) {
	args := m.Called(ctx, filter)
	if b, ok := args.Get(0).([]*domain.BookingWithSlot); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Slot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSlotRepository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	args := m.Called(ctx, filter)
	if s, ok := args.Get(0).([]*domain.Slot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type inlineTxManager struct {
	err error
}

func (m inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakeMetrics struct {
	created  []string
	rejected []string
}

func (m *fakeMetrics) IncBookingCreated(source string)  { m.created = append(m.created, source) }
func (m *fakeMetrics) IncBookingRejected(reason string) { m.rejected = append(m.rejected, reason) }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	svc      *Service
	bookings *mockBookingRepository
	slots    *mockSlotRepository
	metrics  *fakeMetrics
}

// 15/07/2025 10:00 Paris
var testNow = time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	env := &testEnv{
		bookings: &mockBookingRepository{},
		slots:    &mockSlotRepository{},
		metrics:  &fakeMetrics{},
	}
	env.svc = NewService(env.bookings, env.slots, inlineTxManager{}, env.metrics,
		domain.Prices{Simple: domain.DefaultPriceSimple, Double: domain.DefaultPriceDouble}, paris, nopLogger{})
	env.svc.timeProvider = fixedTime{now: testNow}
	return env
}

func slotOn(day int, bookings ...*domain.Booking) *domain.Slot {
	s := &domain.Slot{
		ID:             uuid.New(),
		Date:           time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC),
		Start:          600,
		End:            720,
		CapacitySimple: 8,
		CapacityDouble: 1,
		Bookings:       bookings,
	}
	for _, b := range bookings {
		b.SlotID = s.ID
	}
	return s
}

func customerBooking(simple, double int) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		UserName:    "Jeanne Martin",
		Email:       "jeanne@example.fr",
		Phone:       "0612345678",
		SimpleChars: simple,
		DoubleChars: double,
	}
}

func createRequest(slotID uuid.UUID, simple, double int) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		SlotID:      slotID.String(),
		UserName:    "Paul Durand",
		Email:       "paul@example.fr",
		Phone:       "0698765432",
		SimpleChars: simple,
		DoubleChars: double,
	}
}

func TestService_Create(t *testing.T) {
	env := newTestEnv(t)
	slot := slotOn(15, customerBooking(3, 0))

	env.slots.On("GetByIDForUpdate", mock.Anything, slot.ID).Return(slot, nil)
	env.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.SlotID == slot.ID && b.SimpleChars == 5 && b.DoubleChars == 1
	})).Return(&domain.Booking{ID: uuid.New(), SlotID: slot.ID, SimpleChars: 5, DoubleChars: 1}, nil)

	got, err := env.svc.Create(context.Background(), createRequest(slot.ID, 5, 1))
	require.NoError(t, err)

	assert.Equal(t, slot.ID.String(), got.SlotID)
	require.NotNil(t, got.Slot)
	assert.Equal(t, "10:00", got.Slot.StartTime)
	assert.Equal(t, []string{sourceAdmin}, env.metrics.created)
}

func TestService_Create_CapacityExceeded(t *testing.T) {
	env := newTestEnv(t)
	slot := slotOn(15, customerBooking(6, 1))

	env.slots.On("GetByIDForUpdate", mock.Anything, slot.ID).Return(slot, nil)

	_, err := env.svc.Create(context.Background(), createRequest(slot.ID, 3, 0))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, []string{rejectReasonCapacity}, env.metrics.rejected)
	env.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Validation(t *testing.T) {
	env := newTestEnv(t)

	req := createRequest(uuid.New(), 0, 0)
	_, err := env.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = createRequest(uuid.New(), 1, 0)
	req.SlotID = "not-a-uuid"
	_, err = env.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = createRequest(uuid.New(), 1, 0)
	req.Phone = "0612"
	_, err = env.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_SlotNotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.slots.On("GetByIDForUpdate", mock.Anything, id).Return(nil, slotRepo.ErrSlotNotFound)

	_, err := env.svc.Create(context.Background(), createRequest(id, 1, 0))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_Create_TransactionError(t *testing.T) {
	env := newTestEnv(t)
	env.svc.txManager = inlineTxManager{err: errors.New("could not serialize access")}

	_, err := env.svc.Create(context.Background(), createRequest(uuid.New(), 1, 0))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update_SameSlotGivesBackOwnVehicles(t *testing.T) {
	env := newTestEnv(t)
	own := customerBooking(3, 0)
	slot := slotOn(15, own, customerBooking(5, 0))

	env.bookings.On("GetByID", mock.Anything, own.ID).Return(own, nil)
	env.slots.On("GetByIDForUpdate", mock.Anything, slot.ID).Return(slot, nil)
	env.bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == own.ID && b.SlotID == slot.ID && b.SimpleChars == 3 && b.DoubleChars == 1
	})).Return(&domain.Booking{ID: own.ID, SlotID: slot.ID, SimpleChars: 3, DoubleChars: 1}, nil)

	got, err := env.svc.Update(context.Background(), own.ID, &models.UpdateBookingRequest{
		SimpleChars: ptr.Ptr(3),
		DoubleChars: ptr.Ptr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, got.SimpleChars)
	assert.Equal(t, 1, got.DoubleChars)
}

func TestService_Update_SameSlotOverLimit(t *testing.T) {
	env := newTestEnv(t)
	own := customerBooking(3, 0)
	slot := slotOn(15, own, customerBooking(5, 0))

	env.bookings.On("GetByID", mock.Anything, own.ID).Return(own, nil)
	env.slots.On("GetByIDForUpdate", mock.Anything, slot.ID).Return(slot, nil)

	_, err := env.svc.Update(context.Background(), own.ID, &models.UpdateBookingRequest{SimpleChars: ptr.Ptr(4)})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	env.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_MoveToOtherSlot(t *testing.T) {
	env := newTestEnv(t)
	own := customerBooking(3, 0)
	source := slotOn(15, own)
	target := slotOn(16, customerBooking(6, 1))

	env.bookings.On("GetByID", mock.Anything, own.ID).Return(own, nil)
	env.slots.On("GetByIDForUpdate", mock.Anything, target.ID).Return(target, nil)

	_, err := env.svc.Update(context.Background(), own.ID, &models.UpdateBookingRequest{SlotID: ptr.Ptr(target.ID.String())})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, source.ID, own.SlotID)

	env.bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.SlotID == target.ID && b.SimpleChars == 2
	})).Return(&domain.Booking{ID: own.ID, SlotID: target.ID, SimpleChars: 2}, nil)

	got, err := env.svc.Update(context.Background(), own.ID, &models.UpdateBookingRequest{
		SlotID:      ptr.Ptr(target.ID.String()),
		SimpleChars: ptr.Ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, target.ID.String(), got.SlotID)
	assert.Equal(t, "2025-07-16", got.Slot.Date)
}

func TestService_Update_RefusesEndedSlotOfPastDay(t *testing.T) {
	env := newTestEnv(t)
	own := customerBooking(1, 0)
	slotOn(15, own)
	past := slotOn(14)

	env.bookings.On("GetByID", mock.Anything, own.ID).Return(own, nil)
	env.slots.On("GetByIDForUpdate", mock.Anything, past.ID).Return(past, nil)

	_, err := env.svc.Update(context.Background(), own.ID, &models.UpdateBookingRequest{SlotID: ptr.Ptr(past.ID.String())})
	assert.ErrorIs(t, err, ErrSlotEnded)
	assert.Equal(t, []string{rejectReasonEnded}, env.metrics.rejected)
}

func TestService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.bookings.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := env.svc.Update(context.Background(), id, &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Delete(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.bookings.On("Delete", mock.Anything, id).Return(nil).Once()
	env.bookings.On("Delete", mock.Anything, id).Return(bookingRepo.ErrBookingNotFound).Once()

	require.NoError(t, env.svc.Delete(context.Background(), id))
	assert.ErrorIs(t, env.svc.Delete(context.Background(), id), ErrBookingNotFound)
}

func TestService_List(t *testing.T) {
	env := newTestEnv(t)
	b := customerBooking(2, 0)
	s := slotOn(16, b)

	env.bookings.On("ListAll", mock.Anything, domain.SlotFilter{}).
		Return([]*domain.BookingWithSlot{{Booking: b, Slot: s}}, nil)

	got, err := env.svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "2025-07-16", got.Bookings[0].Slot.Date)
}

func TestService_List_ByEmail(t *testing.T) {
	env := newTestEnv(t)
	b := customerBooking(2, 0)

	env.bookings.On("ListByEmail", mock.Anything, "JEANNE@example.fr").Return([]*domain.Booking{b}, nil)

	got, err := env.svc.List(context.Background(), &models.ListBookingsRequest{Email: ptr.Ptr("JEANNE@example.fr")})
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Nil(t, got.Bookings[0].Slot)
	env.bookings.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestService_Dashboard(t *testing.T) {
	env := newTestEnv(t)

	today := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	slots := []*domain.Slot{
		slotOn(15, customerBooking(3, 0), customerBooking(1, 1)),
		slotOn(17, customerBooking(2, 0)),
	}
	env.slots.On("List", mock.Anything, mock.MatchedBy(func(f domain.SlotFilter) bool {
		return f.From != nil && f.From.Equal(today) && f.To == nil
	})).Return(slots, nil)

	got, err := env.svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalBookings)
	assert.Equal(t, 6, got.TotalSimpleBooked)
	assert.Equal(t, 1, got.TotalDoubleBooked)
	assert.InDelta(t, 6*35+50, got.EstimatedRevenue, 0.001)
	assert.Equal(t, 6, got.TotalHours)
	assert.Equal(t, 1, got.UniqueCustomers)
	require.Len(t, got.Chart, domain.DashboardChartDays)
	assert.Equal(t, "2025-07-15", got.Chart[0].Date)
	assert.Equal(t, "mar.", got.Chart[0].Weekday)
	assert.Equal(t, 2, got.Chart[0].Bookings)
	assert.Equal(t, 1, got.Chart[2].Bookings)
}
