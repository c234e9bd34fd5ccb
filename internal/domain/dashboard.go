package domain

import (
	"math"
	"time"
)

// Prices per vehicle used for the revenue estimate
type Prices struct {
	Simple float64
	Double float64
}

// DashboardStats summarizes upcoming activity for the back-office
type DashboardStats struct {
	TotalBookings        int
	TotalSimpleBooked    int
	TotalDoubleBooked    int
	EstimatedRevenue     float64
	TotalHours           int
	UniqueCustomers      int
	TotalSimpleAvailable int
	TotalDoubleAvailable int
	Chart                []DayBookings
}

// DayBookings is the number of bookings on one calendar day
type DayBookings struct {
	Date     time.Time
	Weekday  string
	Bookings int
}

var frenchWeekdays = [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."}

// FrenchWeekday is the short French name of the day
func FrenchWeekday(d time.Weekday) string {
	return frenchWeekdays[d]
}

// ComputeDashboard aggregates slots dated today or later.
// Hours count the slot duration once per booking, for slots holding at least one vehicle.
// The chart covers chartDays days starting today and counts bookings per day.
func ComputeDashboard(slots []*Slot, today time.Time, prices Prices, chartDays int) DashboardStats {
	today = NormalizeDate(today)

	var stats DashboardStats
	var hours float64
	customers := make(map[string]struct{})

	for _, s := range slots {
		if s == nil || s.Date.Before(today) {
			continue
		}

		booked := s.BookedCount()
		available := s.AvailableCount()

		stats.TotalBookings += len(s.Bookings)
		stats.TotalSimpleBooked += booked.SimpleBooked
		stats.TotalDoubleBooked += booked.DoubleBooked
		stats.TotalSimpleAvailable += available.SimpleAvailable
		stats.TotalDoubleAvailable += available.DoubleAvailable

		if booked.SimpleBooked+booked.DoubleBooked > 0 {
			hours += s.Duration().Hours() * float64(len(s.Bookings))
		}

		for _, b := range s.Bookings {
			if b != nil {
				customers[b.Email] = struct{}{}
			}
		}
	}

	stats.EstimatedRevenue = float64(stats.TotalSimpleBooked)*prices.Simple + float64(stats.TotalDoubleBooked)*prices.Double
	stats.TotalHours = int(math.Round(hours))
	stats.UniqueCustomers = len(customers)
	stats.Chart = bookingsPerDay(slots, today, chartDays)

	return stats
}

func bookingsPerDay(slots []*Slot, today time.Time, days int) []DayBookings {
	chart := make([]DayBookings, days)
	index := make(map[time.Time]int, days)

	for i := range chart {
		date := today.AddDate(0, 0, i)
		chart[i] = DayBookings{Date: date, Weekday: FrenchWeekday(date.Weekday())}
		index[date] = i
	}

	for _, s := range slots {
		if s == nil {
			continue
		}
		if i, ok := index[NormalizeDate(s.Date)]; ok {
			chart[i].Bookings += len(s.Bookings)
		}
	}

	return chart
}
