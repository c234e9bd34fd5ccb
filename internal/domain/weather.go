package domain

import "time"

// WeatherCondition is the simplified sky state shown next to the wind
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
)

// Weather is the current conditions at the spot.
// Wind speeds are km/h rounded to the unit; directions use French cardinal points.
type Weather struct {
	WindKph       int              `json:"wind_kph"`
	WindDir       string           `json:"wind_dir"`
	GustKph       *int             `json:"gust_kph,omitempty"`
	ConditionCode int              `json:"condition_code"`
	ConditionText string           `json:"condition_text"`
	Condition     WeatherCondition `json:"condition"`
	TempC         *float64         `json:"temp_c,omitempty"`
	Location      string           `json:"location"`
	LastUpdated   string           `json:"last_updated"`
	Source        string           `json:"source"`
	FetchedAt     time.Time        `json:"fetched_at"`
}

// Coordinates of a weather observation point
type Coordinates struct {
	Latitude  float64
	Longitude float64
}
