package weatherapi

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
const SourceName = "weatherapi"

const userAgent = "GlisseEtVent/1.0"

// Client клиент WeatherAPI.com
type Client struct {
	baseURL    string
	apiKey     string
	point      domain.Coordinates
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WeatherAPI
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
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(c.point.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.point.Longitude, 'f', -1, 64)))
	query.Set("lang", "fr")

	reqURL := fmt.Sprintf("%s/current.json?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var data CurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	weather := toWeather(data)
	c.log.Info("WeatherAPI: wind=%dkm/h dir=%s location=%s", weather.WindKph, weather.WindDir, weather.Location)

	return weather, nil
}

func toWeather(data CurrentResponse) *domain.Weather {
	weather := &domain.Weather{
		WindKph:       int(math.Round(data.Current.WindKph)),
		WindDir:       data.Current.WindDir,
		ConditionCode: data.Current.Condition.Code,
		ConditionText: data.Current.Condition.Text,
		Condition:     conditionFromCode(data.Current.Condition.Code),
		TempC:         data.Current.TempC,
		Location:      data.Location.Name,
		LastUpdated:   data.Current.LastUpdated,
		Source:        SourceName,
	}

	if data.Current.GustKph != nil && *data.Current.GustKph > 0 {
		gust := int(math.Round(*data.Current.GustKph))
		weather.GustKph = &gust
	}

	return weather
}

// conditionFromCode упрощает коды WeatherAPI (1000 - ясно, 1003..1030 - облачно, остальное - осадки)
func conditionFromCode(code int) domain.WeatherCondition {
	switch {
	case code == 1000:
		return domain.WeatherSunny
	case code >= 1003 && code <= 1030, code == 1135, code == 1147:
		return domain.WeatherCloudy
	case code > 1030:
		return domain.WeatherRainy
	default:
		return domain.WeatherCloudy
	}
}
