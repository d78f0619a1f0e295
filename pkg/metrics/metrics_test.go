package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("booking-widget", reg)

	m.ObserveBooking("success")
	m.ObserveBooking("success")
	m.ObserveBooking("invalid")
	m.ObserveCancellation("success")
	m.ObserveHTTPRequest("POST", "/api/v1/sessions", "201", 15*time.Millisecond)
	m.ObserveStoreOperation("save", errors.New("boom"), time.Millisecond)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cancellationsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/sessions", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking("success")
		m.ObserveCancellation("declined")
		m.ObserveHTTPRequest("GET", "/", "200", time.Millisecond)
		m.ObserveStoreOperation("load", nil, time.Millisecond)
		m.SessionOpened()
		m.SessionClosed()
	})
}
