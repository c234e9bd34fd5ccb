package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	Booking   BookingConfig   `toml:"booking"`
	Weather   WeatherConfig   `toml:"weather"`
	Contact   ContactConfig   `toml:"contact"`
	Telegram  TelegramConfig  `toml:"telegram"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis (кэш погоды)
// Пустой Addr отключает кэш
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// BookingConfig параметры школы
type BookingConfig struct {
	TimeZone      string  `toml:"timezone"`
	PriceSimple   float64 `toml:"price_simple"`
	PriceDouble   float64 `toml:"price_double"`
	CalendarWeeks int     `toml:"calendar_weeks"`
}

// Location часовой пояс пляжа
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// WeatherConfig настройки провайдеров погоды
type WeatherConfig struct {
	Latitude          float64 `toml:"latitude"`
	Longitude         float64 `toml:"longitude"`
	FallbackLatitude  float64 `toml:"fallback_latitude"`
	FallbackLongitude float64 `toml:"fallback_longitude"`
	WeatherAPIURL     string  `toml:"weatherapi_url"`
	WeatherAPIKey     string  `toml:"weatherapi_key"`
	OpenWeatherMapURL string  `toml:"openweathermap_url"`
	OpenWeatherMapKey string  `toml:"openweathermap_key"`
	Timeout           int     `toml:"timeout"`
	CacheTTL          int     `toml:"cache_ttl"`
}

// ContactConfig настройки доставки сообщений формы контакта
type ContactConfig struct {
	SMTPHost       string `toml:"smtp_host"`
	SMTPPort       int    `toml:"smtp_port"`
	SMTPUser       string `toml:"smtp_user"`
	SMTPPassword   string `toml:"smtp_password"`
	From           string `toml:"from"`
	To             string `toml:"to"`
	RelayURL       string `toml:"relay_url"`
	RelayAccessKey string `toml:"relay_access_key"`
	RelayFromName  string `toml:"relay_from_name"`
	Timeout        int    `toml:"timeout"`
}

// TelegramConfig настройки уведомлений администратору
// Пустой токен отключает уведомления
type TelegramConfig struct {
	BotToken string `toml:"bot_token"`
	ChatID   int64  `toml:"chat_id"`
}

// AdminConfig настройки входа в админку
type AdminConfig struct {
	PasswordHash string `toml:"password_hash"`
	JWTSecret    string `toml:"jwt_secret"`
	TokenTTL     int    `toml:"token_ttl"`
}

// RateLimitConfig ограничение частоты запросов с одного IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
}

// CORSConfig разрешенные источники сайта
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает конфигурацию из TOML файла
// Секреты из переменных окружения (и файла .env, если он есть) перекрывают значения файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env опционален: в production переменные задаются окружением
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "gev-booking-service",
		},
		Booking: BookingConfig{
			TimeZone:      domain.DefaultTimeZone,
			PriceSimple:   domain.DefaultPriceSimple,
			PriceDouble:   domain.DefaultPriceDouble,
			CalendarWeeks: domain.DefaultCalendarWeeks,
		},
		Weather: WeatherConfig{
			Latitude:          49.3167,
			Longitude:         -1.7333,
			FallbackLatitude:  49.2009,
			FallbackLongitude: -1.7667,
			WeatherAPIURL:     "https://api.weatherapi.com/v1",
			OpenWeatherMapURL: "https://api.openweathermap.org/data/2.5",
			Timeout:           5,
			CacheTTL:          300,
		},
		Contact: ContactConfig{
			SMTPPort:      587,
			RelayURL:      "https://api.web3forms.com/submit",
			RelayFromName: "Glisse et Vent - Site Web",
			Timeout:       10,
		},
		Admin: AdminConfig{TokenTTL: 43200},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 10,
			Burst:             5,
		},
	}
}

// applyEnv перекрывает секреты и адреса значениями из окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Weather.WeatherAPIKey, "WEATHERAPI_KEY")
	setString(&cfg.Weather.OpenWeatherMapKey, "OPENWEATHERMAP_API_KEY")
	setString(&cfg.Contact.SMTPHost, "SMTP_HOST")
	setString(&cfg.Contact.SMTPUser, "SMTP_USER")
	setString(&cfg.Contact.SMTPPassword, "SMTP_PASS")
	setString(&cfg.Contact.RelayAccessKey, "WEB3FORMS_ACCESS_KEY")
	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setInt64(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	setString(&cfg.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&cfg.Admin.JWTSecret, "JWT_SECRET")
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.PriceSimple < 0 || c.Booking.PriceDouble < 0 {
		return fmt.Errorf("%w: booking prices must not be negative", ErrInvalidConfig)
	}
	if c.Booking.CalendarWeeks < 1 || c.Booking.CalendarWeeks > domain.MaxCalendarWeeks {
		return fmt.Errorf("%w: booking.calendar_weeks must be in [1, %d]", ErrInvalidConfig, domain.MaxCalendarWeeks)
	}
	if c.Admin.PasswordHash == "" || c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin.password_hash and admin.jwt_secret are required", ErrInvalidConfig)
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("%w: admin.token_ttl must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("%w: ratelimit requires requests_per_minute > 0 and burst >= 1", ErrInvalidConfig)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
