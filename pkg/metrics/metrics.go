package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	BookingsCreated   *prometheus.CounterVec
	BookingsRejected  *prometheus.CounterVec
	ContactDeliveries *prometheus.CounterVec
	WeatherCache      *prometheus.CounterVec
	WeatherProviders  *prometheus.CounterVec

	serviceName string
}

// New регистрирует метрики в default registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		HTTPRequestsInFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		}, []string{"service"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created, by source (public, admin)",
		}, []string{"service", "source"}),

		BookingsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_rejected_total",
			Help: "Booking attempts rejected, by reason",
		}, []string{"service", "reason"}),

		ContactDeliveries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_deliveries_total",
			Help: "Contact message delivery attempts, by channel and result",
		}, []string{"service", "channel", "result"}),

		WeatherCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_cache_requests_total",
			Help: "Weather cache lookups, by result (hit, miss, error)",
		}, []string{"service", "result"}),

		WeatherProviders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Weather provider calls, by provider and result",
		}, []string{"service", "provider", "result"}),
	}
}

// ServiceName имя сервиса, используемое в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

func (m *Metrics) IncBookingCreated(source string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName, source).Inc()
}

func (m *Metrics) IncBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(m.serviceName, reason).Inc()
}

func (m *Metrics) IncContactDelivery(channel string, ok bool) {
	if m == nil {
		return
	}
	m.ContactDeliveries.WithLabelValues(m.serviceName, channel, result(ok)).Inc()
}

func (m *Metrics) IncWeatherCache(res string) {
	if m == nil {
		return
	}
	m.WeatherCache.WithLabelValues(m.serviceName, res).Inc()
}

func (m *Metrics) IncWeatherProvider(provider string, ok bool) {
	if m == nil {
		return
	}
	m.WeatherProviders.WithLabelValues(m.serviceName, provider, result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
