package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a customer's reservation of single- and double-seat vehicles within one slot
type Booking struct {
	ID          uuid.UUID
	SlotID      uuid.UUID
	UserName    string
	Email       string
	Phone       string
	SimpleChars int
	DoubleChars int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalChars is the number of vehicles reserved by the booking
func (b *Booking) TotalChars() int {
	return b.SimpleChars + b.DoubleChars
}

// BookingWithSlot is a booking together with the slot it belongs to (reservations table)
type BookingWithSlot struct {
	Booking *Booking
	Slot    *Slot
}

// MaxBookable returns how many vehicles of each category a booking may hold in the target slot.
// When the booking already belongs to the slot its own vehicles are given back to the pool.
func MaxBookable(target *Slot, booking *Booking) AvailableCount {
	available := target.AvailableCount()
	if booking != nil && booking.SlotID == target.ID {
		available.SimpleAvailable += booking.SimpleChars
		available.DoubleAvailable += booking.DoubleChars
	}
	return available
}

// Fits returns true if the requested vehicle counts fit into the given availability.
// Non-positive availability means nothing of that category can be booked.
func Fits(available AvailableCount, simpleChars, doubleChars int) bool {
	return simpleChars <= max(available.SimpleAvailable, 0) &&
		doubleChars <= max(available.DoubleAvailable, 0)
}
