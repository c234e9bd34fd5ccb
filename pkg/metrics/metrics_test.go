package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry("gev-test", prometheus.NewRegistry())

	m.IncBookingCreated("public")
	m.IncBookingCreated("public")
	m.IncBookingRejected("capacity_exceeded")
	m.IncContactDelivery("smtp", false)
	m.IncContactDelivery("relay", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("gev-test", "public")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejected.WithLabelValues("gev-test", "capacity_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactDeliveries.WithLabelValues("gev-test", "smtp", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactDeliveries.WithLabelValues("gev-test", "relay", "success")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated("admin")
		m.IncWeatherCache("hit")
		m.IncWeatherProvider("weatherapi", true)
	})
	assert.Equal(t, "", m.ServiceName())
}
