package openweathermap

// WeatherResponse ответ data/2.5/weather (units=metric)
type WeatherResponse struct {
	Name    string        `json:"name"`
	Dt      int64         `json:"dt"`
	Main    Main          `json:"main"`
	Wind    Wind          `json:"wind"`
	Weather []WeatherItem `json:"weather"`
}

// Main температура
type Main struct {
	Temp float64 `json:"temp"`
}

// Wind скорость в м/с, направление в градусах
type Wind struct {
	Speed float64  `json:"speed"`
	Deg   float64  `json:"deg"`
	Gust  *float64 `json:"gust"`
}

// WeatherItem состояние неба
type WeatherItem struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// ErrorResponse модель ошибки OpenWeatherMap
type ErrorResponse struct {
	Cod     interface{} `json:"cod"`
	Message string      `json:"message"`
}
