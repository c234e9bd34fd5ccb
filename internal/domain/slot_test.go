package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlot(capSimple, capDouble int, bookings ...*Booking) *Slot {
	return &Slot{
		ID:             uuid.New(),
		Date:           time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Start:          900,
		End:            990,
		CapacitySimple: capSimple,
		CapacityDouble: capDouble,
		Bookings:       bookings,
	}
}

func booking(simple, double int) *Booking {
	return &Booking{ID: uuid.New(), SimpleChars: simple, DoubleChars: double}
}

func TestSlot_EmptyBookings(t *testing.T) {
	for _, s := range []*Slot{newSlot(8, 1), newSlot(1, 0), newSlot(0, 3)} {
		assert.Equal(t, BookedCount{}, s.BookedCount())
		assert.Equal(t, SlotStatusAvailable, s.Status())
	}
}

func TestSlot_AvailableComplementsBooked(t *testing.T) {
	slots := []*Slot{
		newSlot(8, 1),
		newSlot(8, 1, booking(3, 0)),
		newSlot(8, 1, booking(3, 0), booking(5, 1)),
		newSlot(2, 0, booking(3, 0)), // capacity lowered after booking
		newSlot(0, 0),
	}

	for _, s := range slots {
		booked := s.BookedCount()
		available := s.AvailableCount()
		assert.Equal(t, s.CapacitySimple, available.SimpleAvailable+booked.SimpleBooked)
		assert.Equal(t, s.CapacityDouble, available.DoubleAvailable+booked.DoubleBooked)
	}
}

func TestSlot_Status(t *testing.T) {
	tests := []struct {
		name string
		slot *Slot
		want SlotStatus
	}{
		{name: "no bookings", slot: newSlot(8, 1), want: SlotStatusAvailable},
		{name: "simple open, double open", slot: newSlot(8, 1, booking(1, 0)), want: SlotStatusConfirmed},
		{name: "simple full, double open", slot: newSlot(8, 1, booking(8, 0)), want: SlotStatusConfirmed},
		{name: "double full, simple open", slot: newSlot(8, 1, booking(0, 1)), want: SlotStatusConfirmed},
		{name: "both saturated", slot: newSlot(8, 1, booking(5, 0), booking(3, 1)), want: SlotStatusFull},
		{name: "both saturated by one booking", slot: newSlot(2, 1, booking(2, 1)), want: SlotStatusFull},
		{name: "over capacity", slot: newSlot(1, 0, booking(3, 0)), want: SlotStatusFull},
		{name: "zero capacity", slot: newSlot(0, 0), want: SlotStatusFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.Status())
		})
	}
}

func TestSlot_PublicStatus_ZeroCapacity(t *testing.T) {
	got := newSlot(0, 0).PublicStatus()

	assert.Equal(t, PublicSlotStatus{
		Status:         PublicStatusFull,
		TotalAvailable: 0,
		TotalCapacity:  0,
		PercentageUsed: 100,
	}, got)
}

func TestSlot_ScenarioA(t *testing.T) {
	s := newSlot(8, 1, booking(3, 0))

	assert.Equal(t, BookedCount{SimpleBooked: 3, DoubleBooked: 0}, s.BookedCount())
	assert.Equal(t, AvailableCount{SimpleAvailable: 5, DoubleAvailable: 1}, s.AvailableCount())
	assert.Equal(t, SlotStatusConfirmed, s.Status())

	public := s.PublicStatus()
	assert.Equal(t, PublicStatusAvailable, public.Status)
	assert.Equal(t, 6, public.TotalAvailable)
	assert.Equal(t, 9, public.TotalCapacity)
	assert.InDelta(t, 33.33, public.PercentageUsed, 0.01)
}

func TestSlot_ScenarioB(t *testing.T) {
	s := newSlot(8, 1, booking(3, 0), booking(5, 1))

	assert.Equal(t, BookedCount{SimpleBooked: 8, DoubleBooked: 1}, s.BookedCount())
	assert.Equal(t, AvailableCount{}, s.AvailableCount())
	assert.Equal(t, SlotStatusFull, s.Status())

	public := s.PublicStatus()
	assert.Equal(t, PublicStatusFull, public.Status)
	assert.Equal(t, 0, public.TotalAvailable)
	assert.InDelta(t, 100, public.PercentageUsed, 0.001)
}

func TestSlot_ScenarioC_AlmostFull(t *testing.T) {
	s := newSlot(8, 1, booking(4, 0), booking(3, 0))

	public := s.PublicStatus()
	assert.Equal(t, PublicStatusAlmostFull, public.Status)
	assert.Equal(t, 2, public.TotalAvailable)
	assert.Equal(t, 9, public.TotalCapacity)
}

func TestSlot_PublicStatus_Threshold(t *testing.T) {
	// 3/10 = 0.3 is not under the threshold
	assert.Equal(t, PublicStatusAvailable, newSlot(10, 0, booking(7, 0)).PublicStatus().Status)
	// 2/10 = 0.2 is
	assert.Equal(t, PublicStatusAlmostFull, newSlot(10, 0, booking(8, 0)).PublicStatus().Status)
}

func TestSlot_PublicStatus_Overbooked(t *testing.T) {
	s := newSlot(2, 1, booking(4, 0))

	public := s.PublicStatus()
	assert.Equal(t, PublicStatusFull, public.Status)
	assert.Equal(t, 0, public.TotalAvailable)
	assert.InDelta(t, 133.33, public.PercentageUsed, 0.01)
	assert.True(t, s.IsOverbooked())
	assert.Equal(t, -2, s.AvailableCount().SimpleAvailable)
}

func TestSlot_Idempotent(t *testing.T) {
	s := newSlot(8, 1, booking(3, 0), booking(4, 1))

	assert.Equal(t, s.BookedCount(), s.BookedCount())
	assert.Equal(t, s.AvailableCount(), s.AvailableCount())
	assert.Equal(t, s.Status(), s.Status())
	assert.Equal(t, s.PublicStatus(), s.PublicStatus())
}

func TestSlot_IgnoresNilBookings(t *testing.T) {
	s := newSlot(8, 1, nil, booking(2, 0))
	assert.Equal(t, BookedCount{SimpleBooked: 2}, s.BookedCount())
}

func TestSlot_HasStarted(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	s := newSlot(8, 1) // 14/07/2025 15:00 - 16:30 Paris

	before := time.Date(2025, 7, 14, 14, 59, 0, 0, paris)
	at := time.Date(2025, 7, 14, 15, 0, 0, 0, paris)
	during := time.Date(2025, 7, 14, 16, 0, 0, 0, paris)

	assert.False(t, s.HasStarted(before, paris))
	assert.True(t, s.HasStarted(at, paris))
	assert.False(t, s.HasEnded(during, paris))
	assert.True(t, s.HasEnded(time.Date(2025, 7, 14, 16, 30, 0, 0, paris), paris))
	assert.Equal(t, 90*time.Minute, s.Duration())
}

func TestNormalizeDate(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	got := NormalizeDate(time.Date(2025, 7, 14, 0, 30, 0, 0, paris))
	assert.Equal(t, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestSlot_EndedBeforeToday(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	s := newSlot(8, 1) // 14/07/2025 15:00 - 16:30

	assert.False(t, s.EndedBeforeToday(time.Date(2025, 7, 14, 20, 0, 0, 0, paris), paris))
	assert.True(t, s.EndedBeforeToday(time.Date(2025, 7, 15, 9, 0, 0, 0, paris), paris))
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), Today(time.Date(2025, 7, 14, 23, 30, 0, 0, time.UTC), paris))
}
