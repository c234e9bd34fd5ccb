package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GEV-BookingService/pkg/types"
)

func slotOn(date time.Time, start, end int, capSimple, capDouble int, bookings ...*Booking) *Slot {
	s := newSlot(capSimple, capDouble, bookings...)
	s.Date = date
	s.Start = types.TimeOfDay(start)
	s.End = types.TimeOfDay(end)
	return s
}

func customer(email string, simple, double int) *Booking {
	b := booking(simple, double)
	b.Email = email
	return b
}

func TestComputeDashboard(t *testing.T) {
	today := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC) // Monday
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 8)

	slots := []*Slot{
		slotOn(yesterday, 840, 930, 8, 1, customer("old@example.fr", 4, 0)),
		slotOn(today, 840, 930, 8, 1,
			customer("jeanne@example.fr", 3, 0),
			customer("paul@example.fr", 1, 1)),
		slotOn(tomorrow, 600, 660, 8, 1, customer("jeanne@example.fr", 2, 0)),
		slotOn(tomorrow, 840, 900, 8, 1),
		slotOn(nextWeek, 840, 930, 8, 1, customer("marie@example.fr", 1, 0)),
	}

	stats := ComputeDashboard(slots, today.Add(10*time.Hour), Prices{Simple: 35, Double: 50}, DashboardChartDays)

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 7, stats.TotalSimpleBooked)
	assert.Equal(t, 1, stats.TotalDoubleBooked)
	assert.InDelta(t, 7*35+50, stats.EstimatedRevenue, 0.001)
	// 1.5h x 2 + 1h x 1 + 1.5h x 1
	assert.Equal(t, 6, stats.TotalHours)
	assert.Equal(t, 3, stats.UniqueCustomers)
	assert.Equal(t, (8-4)+(8-2)+8+(8-1), stats.TotalSimpleAvailable)
	assert.Equal(t, 0+1+1+1, stats.TotalDoubleAvailable)

	require.Len(t, stats.Chart, 7)
	assert.Equal(t, today, stats.Chart[0].Date)
	assert.Equal(t, "lun.", stats.Chart[0].Weekday)
	assert.Equal(t, 2, stats.Chart[0].Bookings)
	assert.Equal(t, 1, stats.Chart[1].Bookings)
	assert.Equal(t, 0, stats.Chart[6].Bookings)
}

func TestComputeDashboard_Empty(t *testing.T) {
	stats := ComputeDashboard(nil, time.Now(), Prices{Simple: 35, Double: 50}, 3)

	assert.Zero(t, stats.TotalBookings)
	assert.Zero(t, stats.EstimatedRevenue)
	assert.Len(t, stats.Chart, 3)
}
