package domain

// Default slot capacities (fleet of the school)
const (
	DefaultCapacitySimple = 8
	DefaultCapacityDouble = 1
)

// Booking validation constants
const (
	MinUserNameLength = 2
	MinPhoneLength    = 10
	MaxUserNameLength = 100
	MaxEmailLength    = 254
	MaxPhoneLength    = 30
	MaxCharsPerSlot   = 100
)

// Contact form validation constants
const (
	MinContactNameLength    = 2
	MinContactMessageLength = 10
	MaxContactMessageLength = 5000
)

// Default prices used by the dashboard revenue estimate (EUR per vehicle)
const (
	DefaultPriceSimple = 35.0
	DefaultPriceDouble = 50.0
)

// Calendar defaults
const (
	DefaultCalendarWeeks = 4
	MaxCalendarWeeks     = 12
	DashboardChartDays   = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimeZone is the local time of the beach, used to decide whether a slot has started
const DefaultTimeZone = "Europe/Paris"
