package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик виджета: HTTP слой, бизнес-события и хранилище
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	cancellationsTotal  *prometheus.CounterVec
	storeOpDuration     *prometheus.HistogramVec
	activeSessions      prometheus.Gauge
}

// New создает и регистрирует метрики.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "widget_bookings_total",
			Help:        "Booking confirmations by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		cancellationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "widget_cancellations_total",
			Help:        "Appointment cancellations by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		storeOpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "widget_store_operation_duration_seconds",
			Help:        "Durable store operation latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "widget_active_sessions",
			Help:        "Open widget page sessions",
			ConstLabels: labels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.cancellationsTotal,
		m.storeOpDuration,
		m.activeSessions,
	)
	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBooking учитывает попытку подтверждения бронирования
// (outcome: success, invalid, slot_taken, persist_failed, store_unavailable)
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveCancellation учитывает отмену записи
// (outcome: success, declined, not_found, persist_failed, store_unavailable)
func (m *Metrics) ObserveCancellation(outcome string) {
	if m == nil {
		return
	}
	m.cancellationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveStoreOperation учитывает операцию с хранилищем
func (m *Metrics) ObserveStoreOperation(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.storeOpDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SessionOpened увеличивает число активных сессий
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// SessionClosed уменьшает число активных сессий
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
