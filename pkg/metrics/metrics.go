package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "session_booking"

// Metrics набор prometheus-метрик сервиса.
// Все методы Observe* безопасны для nil-получателя: при выключенных метриках
// в usecase передается nil и вызовы просто игнорируются.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	availabilityTotal   *prometheus.CounterVec
	availabilitySources *prometheus.CounterVec
	reservationsTotal   *prometheus.CounterVec
	draftOperations     *prometheus.CounterVec
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном регистраторе
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route and status code",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query latency by operation",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_errors_total",
			Help:        "Failed database queries by operation",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "connections",
			Help:        "Connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "computations_total",
			Help:        "Slot grid computations by result (grid, fallback)",
			ConstLabels: labels,
		}, []string{"result"}),
		availabilitySources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "source_failures_total",
			Help:        "Skipped exclusion sources (exceptions, reservations)",
			ConstLabels: labels,
		}, []string{"source"}),
		reservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "reservations_total",
			Help:        "Reservation submissions by result",
			ConstLabels: labels,
		}, []string{"result"}),
		draftOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "draft_operations_total",
			Help:        "Draft store operations by kind and result",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.availabilityTotal,
		m.availabilitySources,
		m.reservationsTotal,
		m.draftOperations,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}

func (m *Metrics) ObserveAvailability(usedFallback bool) {
	if m == nil {
		return
	}
	result := "grid"
	if usedFallback {
		result = "fallback"
	}
	m.availabilityTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAvailabilitySourceFailure(source string) {
	if m == nil {
		return
	}
	m.availabilitySources.WithLabelValues(source).Inc()
}

func (m *Metrics) ObserveReservation(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.reservationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDraftOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.draftOperations.WithLabelValues(operation, result).Inc()
}
