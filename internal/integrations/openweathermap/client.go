package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// SourceName имя провайдера в ответе и метриках
const SourceName = "openweathermap"

// msToKph перевод м/с в км/ч
const msToKph = 3.6

const (
	defaultConditionCode = 800
	defaultConditionText = "Non disponible"
)

// cardinalPoints 16 румбов во французской нотации (O - ouest)
var cardinalPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSO", "SO", "OSO", "O", "ONO", "NO", "NNO",
}

// Client клиент OpenWeatherMap (резервный провайдер погоды)
type Client struct {
	baseURL    string
	apiKey     string
	point      domain.Coordinates
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OpenWeatherMap
func NewClient(baseURL, apiKey string, point domain.Coordinates, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		point:   point,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Name имя провайдера
func (c *Client) Name() string {
	return SourceName
}

// Enabled сообщает, настроен ли ключ API
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GetCurrent получает текущую погоду на споте
func (c *Client) GetCurrent(ctx context.Context) (*domain.Weather, error) {
	if !c.Enabled() {
		return nil, ErrMissingAPIKey
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(c.point.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(c.point.Longitude, 'f', -1, 64))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", "fr")

	reqURL := fmt.Sprintf("%s/weather?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var data WeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	weather := toWeather(data)
	c.log.Info("OpenWeatherMap: wind=%dkm/h dir=%s location=%s", weather.WindKph, weather.WindDir, weather.Location)

	return weather, nil
}

func toWeather(data WeatherResponse) *domain.Weather {
	code := defaultConditionCode
	text := defaultConditionText
	if len(data.Weather) > 0 {
		if data.Weather[0].ID != 0 {
			code = data.Weather[0].ID
		}
		if data.Weather[0].Description != "" {
			text = data.Weather[0].Description
		}
	}

	temp := data.Main.Temp
	weather := &domain.Weather{
		WindKph:       int(math.Round(data.Wind.Speed * msToKph)),
		WindDir:       DegreesToCardinal(data.Wind.Deg),
		ConditionCode: code,
		ConditionText: text,
		Condition:     ConditionFromCode(code),
		TempC:         &temp,
		Location:      data.Name,
		Source:        SourceName,
	}

	if data.Dt > 0 {
		weather.LastUpdated = time.Unix(data.Dt, 0).UTC().Format("2006-01-02 15:04")
	}

	if data.Wind.Gust != nil && *data.Wind.Gust > 0 {
		gust := int(math.Round(*data.Wind.Gust * msToKph))
		weather.GustKph = &gust
	}

	return weather
}

// DegreesToCardinal переводит направление ветра в градусах в один из 16 румбов
func DegreesToCardinal(deg float64) string {
	normalized := math.Mod(deg, 360)
	if normalized < 0 {
		normalized += 360
	}
	index := int(math.Round(normalized/22.5)) % len(cardinalPoints)
	return cardinalPoints[index]
}

// ConditionFromCode упрощает коды OpenWeatherMap:
// 2xx-5xx (гроза, морось, дождь) - дождь, 800 - ясно, 801-804 и прочее - облачно
func ConditionFromCode(code int) domain.WeatherCondition {
	switch {
	case code >= 200 && code < 600:
		return domain.WeatherRainy
	case code == 800:
		return domain.WeatherSunny
	default:
		return domain.WeatherCloudy
	}
}
