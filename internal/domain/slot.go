package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/pkg/types"
)

// SlotStatus is the admin-facing status of a slot
type SlotStatus string

const (
	SlotStatusFull      SlotStatus = "full"
	SlotStatusConfirmed SlotStatus = "confirmed"
	SlotStatusAvailable SlotStatus = "available"
)

// PublicStatus is the customer-facing status of a slot
type PublicStatus string

const (
	PublicStatusAvailable  PublicStatus = "available"
	PublicStatusAlmostFull PublicStatus = "almost_full"
	PublicStatusFull       PublicStatus = "full"
)

// Slot is a bookable time window on a given day.
// Date is always UTC midnight; Start and End are minutes since midnight.
type Slot struct {
	ID             uuid.UUID
	Date           time.Time
	Start          types.TimeOfDay
	End            types.TimeOfDay
	CapacitySimple int
	CapacityDouble int
	Bookings       []*Booking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookedCount is the number of vehicles already booked in a slot
type BookedCount struct {
	SimpleBooked int
	DoubleBooked int
}

// AvailableCount is the remaining capacity of a slot per vehicle category.
// Values are not clamped: they go negative when capacity was lowered below existing bookings.
type AvailableCount struct {
	SimpleAvailable int
	DoubleAvailable int
}

// PublicSlotStatus is the pooled view shown to customers
type PublicSlotStatus struct {
	Status         PublicStatus
	TotalAvailable int
	TotalCapacity  int
	PercentageUsed float64
}

// AlmostFullThreshold is the share of pooled capacity under which a slot is "almost full"
const AlmostFullThreshold = 0.3

// BookedCount sums the vehicles of every booking in the slot
func (s *Slot) BookedCount() BookedCount {
	var c BookedCount
	for _, b := range s.Bookings {
		if b == nil {
			continue
		}
		c.SimpleBooked += b.SimpleChars
		c.DoubleBooked += b.DoubleChars
	}
	return c
}

// AvailableCount returns capacity minus booked vehicles for each category
func (s *Slot) AvailableCount() AvailableCount {
	booked := s.BookedCount()
	return AvailableCount{
		SimpleAvailable: s.CapacitySimple - booked.SimpleBooked,
		DoubleAvailable: s.CapacityDouble - booked.DoubleBooked,
	}
}

// Status derives the admin status.
// Full needs both categories saturated; any booking otherwise makes the slot Confirmed.
func (s *Slot) Status() SlotStatus {
	booked := s.BookedCount()

	if booked.SimpleBooked >= s.CapacitySimple && booked.DoubleBooked >= s.CapacityDouble {
		return SlotStatusFull
	}
	if len(s.Bookings) > 0 {
		return SlotStatusConfirmed
	}
	return SlotStatusAvailable
}

// PublicStatus derives the customer status, pooling both vehicle categories
func (s *Slot) PublicStatus() PublicSlotStatus {
	available := s.AvailableCount()
	totalAvailable := available.SimpleAvailable + available.DoubleAvailable
	totalCapacity := s.CapacitySimple + s.CapacityDouble

	percentageUsed := 100.0
	if totalCapacity > 0 {
		percentageUsed = 100 * float64(totalCapacity-totalAvailable) / float64(totalCapacity)
	}

	if totalAvailable <= 0 {
		return PublicSlotStatus{
			Status:         PublicStatusFull,
			TotalAvailable: 0,
			TotalCapacity:  totalCapacity,
			PercentageUsed: percentageUsed,
		}
	}

	status := PublicStatusAvailable
	if totalCapacity > 0 && float64(totalAvailable)/float64(totalCapacity) < AlmostFullThreshold {
		status = PublicStatusAlmostFull
	}

	return PublicSlotStatus{
		Status:         status,
		TotalAvailable: totalAvailable,
		TotalCapacity:  totalCapacity,
		PercentageUsed: percentageUsed,
	}
}

// IsOverbooked returns true if a category holds more bookings than its capacity
func (s *Slot) IsOverbooked() bool {
	a := s.AvailableCount()
	return a.SimpleAvailable < 0 || a.DoubleAvailable < 0
}

// Duration of the slot
func (s *Slot) Duration() time.Duration {
	return time.Duration(s.End-s.Start) * time.Minute
}

// StartsAt is the start moment of the slot in the given location
func (s *Slot) StartsAt(loc *time.Location) time.Time {
	return s.Start.On(s.Date, loc)
}

// EndsAt is the end moment of the slot in the given location
func (s *Slot) EndsAt(loc *time.Location) time.Time {
	return s.End.On(s.Date, loc)
}

// HasStarted returns true once the slot start is reached
func (s *Slot) HasStarted(now time.Time, loc *time.Location) bool {
	return !now.Before(s.StartsAt(loc))
}

// HasEnded returns true once the slot end is reached
func (s *Slot) HasEnded(now time.Time, loc *time.Location) bool {
	return !now.Before(s.EndsAt(loc))
}

// NormalizeDate truncates a date to UTC midnight, keeping its calendar day
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SlotFilter selects slots by date range (both bounds inclusive, nil = unbounded)
type SlotFilter struct {
	From *time.Time
	To   *time.Time
}

// EndedBeforeToday returns true for slots of a past day that are over.
// A slot of the current day stays selectable even once ended.
func (s *Slot) EndedBeforeToday(now time.Time, loc *time.Location) bool {
	return s.Date.Before(Today(now, loc)) && s.HasEnded(now, loc)
}

// Today is the current calendar day in loc, as a normalized date
func Today(now time.Time, loc *time.Location) time.Time {
	return NormalizeDate(now.In(loc))
}
