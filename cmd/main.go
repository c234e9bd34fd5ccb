package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	adminCreateBookingHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_create_booking"
	adminCreateSlotHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_create_slot"
	adminDeleteBookingHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_delete_booking"
	adminDeleteSlotHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_delete_slot"
	adminGetSlotHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_get_slot"
	adminListBookingsHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_list_bookings"
	adminListSlotsHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_list_slots"
	adminLoginHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_login"
	adminUpdateBookingHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_update_booking"
	adminUpdateSlotHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/admin_update_slot"
	createBookingHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/create_booking"
	getCalendarHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/get_calendar"
	getDashboardHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/get_dashboard"
	getSlotHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/get_slot"
	getWeatherHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/get_weather"
	healthHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/health"
	submitContactHandler "github.com/m04kA/GEV-BookingService/internal/api/handlers/submit_contact"
	"github.com/m04kA/GEV-BookingService/internal/api/middleware"
	"github.com/m04kA/GEV-BookingService/internal/config"
	"github.com/m04kA/GEV-BookingService/internal/domain"
	weatherCache "github.com/m04kA/GEV-BookingService/internal/infra/cache/weather"
	bookingRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/GEV-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/GEV-BookingService/internal/integrations/openweathermap"
	"github.com/m04kA/GEV-BookingService/internal/integrations/smtp"
	"github.com/m04kA/GEV-BookingService/internal/integrations/telegram"
	"github.com/m04kA/GEV-BookingService/internal/integrations/weatherapi"
	"github.com/m04kA/GEV-BookingService/internal/integrations/web3forms"
	authService "github.com/m04kA/GEV-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/GEV-BookingService/internal/service/bookings"
	contactService "github.com/m04kA/GEV-BookingService/internal/service/contact"
	slotsService "github.com/m04kA/GEV-BookingService/internal/service/slots"
	weatherService "github.com/m04kA/GEV-BookingService/internal/service/weather"
	createBookingUC "github.com/m04kA/GEV-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/GEV-BookingService/internal/usecase/get_calendar"
	"github.com/m04kA/GEV-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GEV-BookingService/pkg/logger"
	"github.com/m04kA/GEV-BookingService/pkg/metrics"
	"github.com/m04kA/GEV-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GEV-BookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load time zone %s: %v", cfg.Booking.TimeZone, err)
	}

	// Инициализируем метрики (если включены)
	// При выключенных метриках передается nil: все методы Metrics безопасны для nil
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Redis для кэша погоды (опционален)
	var cache weatherService.Cache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, weather will be fetched without cache: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		cache = weatherCache.NewCache(rdb, time.Duration(cfg.Weather.CacheTTL)*time.Second)
		log.Info("Weather cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Weather.CacheTTL)
	}

	// Инициализируем интеграционных клиентов
	weatherTimeout := time.Duration(cfg.Weather.Timeout) * time.Second
	weatherAPIClient := weatherapi.NewClient(
		cfg.Weather.WeatherAPIURL,
		cfg.Weather.WeatherAPIKey,
		domain.Coordinates{Latitude: cfg.Weather.Latitude, Longitude: cfg.Weather.Longitude},
		weatherTimeout,
		log,
	)
	openWeatherMapClient := openweathermap.NewClient(
		cfg.Weather.OpenWeatherMapURL,
		cfg.Weather.OpenWeatherMapKey,
		domain.Coordinates{Latitude: cfg.Weather.FallbackLatitude, Longitude: cfg.Weather.FallbackLongitude},
		weatherTimeout,
		log,
	)

	smtpSender := smtp.NewSender(
		cfg.Contact.SMTPHost,
		cfg.Contact.SMTPPort,
		cfg.Contact.SMTPUser,
		cfg.Contact.SMTPPassword,
		cfg.Contact.From,
		cfg.Contact.To,
		log,
	)
	relayClient := web3forms.NewClient(
		cfg.Contact.RelayURL,
		cfg.Contact.RelayAccessKey,
		cfg.Contact.RelayFromName,
		time.Duration(cfg.Contact.Timeout)*time.Second,
		log,
	)

	telegramNotifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	if err != nil {
		log.Warn("Telegram notifier disabled: %v", err)
		telegramNotifier = nil
	}

	// Уведомления о бронированиях отправляются только при настроенном боте
	var bookingNotifier createBookingUC.Notifier
	if telegramNotifier.Enabled() {
		bookingNotifier = telegramNotifier
	}

	log.Info("Integration clients initialized (weatherapi=%t, openweathermap=%t, smtp=%t, web3forms=%t, telegram=%t)",
		weatherAPIClient.Enabled(), openWeatherMapClient.Enabled(),
		smtpSender.Enabled(), relayClient.Enabled(), telegramNotifier.Enabled())

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	prices := domain.Prices{Simple: cfg.Booking.PriceSimple, Double: cfg.Booking.PriceDouble}

	slotSvc := slotsService.NewService(slotRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		txMgr,
		metricsCollector,
		prices,
		location,
		log,
	)
	contactSvc := contactService.NewService(metricsCollector, log, smtpSender, relayClient, telegramNotifier)
	weatherSvc := weatherService.NewService(cache, metricsCollector, log, weatherAPIClient, openWeatherMapClient)
	authSvc := authService.NewService(
		cfg.Admin.PasswordHash,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTL)*time.Second,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		bookingNotifier,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(slotRepository, location, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, cfg.Booking.CalendarWeeks, log)
	getSlot := getSlotHandler.NewHandler(getCalendarUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	submitContact := submitContactHandler.NewHandler(contactSvc, log)
	getWeather := getWeatherHandler.NewHandler(weatherSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)

	adminListSlots := adminListSlotsHandler.NewHandler(slotSvc, log)
	adminCreateSlot := adminCreateSlotHandler.NewHandler(slotSvc, log)
	adminGetSlot := adminGetSlotHandler.NewHandler(slotSvc, log)
	adminUpdateSlot := adminUpdateSlotHandler.NewHandler(slotSvc, log)
	adminDeleteSlot := adminDeleteSlotHandler.NewHandler(slotSvc, log)
	adminListBookings := adminListBookingsHandler.NewHandler(bookingSvc, log)
	adminCreateBooking := adminCreateBookingHandler.NewHandler(bookingSvc, log)
	adminUpdateBooking := adminUpdateBookingHandler.NewHandler(bookingSvc, log)
	adminDeleteBooking := adminDeleteBookingHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)

	// Ограничение частоты запросов для форм сайта и входа в админку
	limited := func(h http.HandlerFunc) http.Handler {
		return h
	}
	rateLimitCtx, stopRateLimit := context.WithCancel(context.Background())
	defer stopRateLimit()

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		go rateLimiter.Cleanup(rateLimitCtx, time.Minute, 10*time.Minute)

		limit := rateLimiter.Limit()
		limited = func(h http.HandlerFunc) http.Handler {
			return limit(h)
		}
		log.Info("Rate limiting enabled (%.0f req/min, burst=%d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт школы)
	// ============================================================

	// Календарь доступных слотов и состояние слота перед бронированием
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// Бронирование и форма контакта
	api.Handle("/bookings", limited(createBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/contact", limited(submitContact.Handle)).Methods(http.MethodPost)

	// Погода на споте
	api.HandleFunc("/weather", getWeather.Handle).Methods(http.MethodGet)

	// Вход в админку
	api.Handle("/admin/login", limited(adminLogin.Handle)).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	// --- Слоты ---
	admin.HandleFunc("/slots", adminListSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots", adminCreateSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", adminGetSlot.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId}", adminUpdateSlot.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{slotId}", adminDeleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminListBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", adminCreateBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", adminUpdateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}", adminDeleteBooking.Handle).Methods(http.MethodDelete)

	// --- Дашборд ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// CORS для сайта школы
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
