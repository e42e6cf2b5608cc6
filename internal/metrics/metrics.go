// Package metrics holds the process-wide Prometheus collectors. Label sets are
// kept bounded: routes use the registered gin path, never raw URLs or tokens.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

// Tenant auth outcomes.
const (
	AuthOK      = "ok"
	AuthMissing = "missing"
	AuthInvalid = "invalid"
	AuthError   = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInflight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	// TenantAuthTotal separates missing from invalid shop tokens; clients
	// see the same 401 for both.
	TenantAuthTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenant_auth_total",
			Help:      "Shop token resolutions by outcome.",
		},
		[]string{"result"},
	)

	HealthProbeUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "health_probe_up",
			Help:      "1 when the last run of a health probe succeeded.",
		},
		[]string{"probe"},
	)

	TenantsOffboardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenants_offboarded_total",
			Help:      "Offboarding messages processed by outcome.",
		},
		[]string{"outcome"},
	)
)
