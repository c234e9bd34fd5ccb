package weatherapi

// CurrentResponse ответ current.json
type CurrentResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Location точка наблюдения
type Location struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Current текущие условия
type Current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       *float64  `json:"temp_c"`
	WindKph     float64   `json:"wind_kph"`
	WindDegree  int       `json:"wind_degree"`
	WindDir     string    `json:"wind_dir"` // направление в английской нотации (N, WSW, ...)
	GustKph     *float64  `json:"gust_kph"`
	Condition   Condition `json:"condition"`
}

// Condition состояние неба
type Condition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// ErrorResponse модель ошибки WeatherAPI
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
