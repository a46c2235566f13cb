package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const OutcomeSuccess = "SUCCESS"

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Dispatch Metrics
	DispatchTotal   *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec

	// Validation Metrics
	ValidationErrors *prometheus.CounterVec

	// System Metrics
	ServiceUptime    prometheus.Gauge
	Goroutines       prometheus.Gauge
	MemoryUsageBytes *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notifier_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "notifier_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		HTTPResponseSizeBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notifier_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: []float64{100, 1000, 10_000, 100_000},
			},
			[]string{"method", "path", "status_code"},
		),

		DispatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_dispatch_total",
				Help: "Per-recipient dispatch attempts by outcome code",
			},
			[]string{"outcome"},
		),
		GatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notifier_gateway_request_duration_seconds",
				Help:    "Duration of SMS gateway calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"outcome"},
		),

		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_validation_errors_total",
				Help: "Total number of request validation errors",
			},
			[]string{"field", "tag"},
		),

		ServiceUptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "notifier_service_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
		Goroutines: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "notifier_goroutines",
				Help: "Number of goroutines",
			},
		),
		MemoryUsageBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "notifier_memory_usage_bytes",
				Help: "Memory usage in bytes by type",
			},
			[]string{"type"},
		),
	}
}

// --- Recording Methods ---

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration, responseSize int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
	m.HTTPResponseSizeBytes.WithLabelValues(method, path, statusCode).Observe(float64(responseSize))
}

// RecordDispatch is safe to call on a nil *Metrics.
func (m *Metrics) RecordDispatch(outcome string) {
	if m == nil {
		return
	}
	m.DispatchTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordGatewayCall(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.GatewayDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))

	m.MemoryUsageBytes.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsageBytes.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsageBytes.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
}
