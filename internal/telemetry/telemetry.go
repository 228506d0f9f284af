// Package telemetry exposes Prometheus collectors for the SEO edge service.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	seoRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_renders_total",
			Help: "Total metadata documents rendered, labeled by route and data source.",
		},
		[]string{"route", "source"},
	)

	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total upstream gateway calls, labeled by endpoint and outcome code.",
		},
		[]string{"endpoint", "code"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests, labeled by method and code.",
		},
		[]string{"method", "code"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, labeled by method and route.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	sitemapEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitemap_entries",
			Help: "Number of URL entries in the most recently built sitemap.",
		},
	)
)

// Handler returns the standard Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware is a chi middleware that records HTTP request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		ObserveHTTPRequest(r.Method, routePattern, ww.statusCode, time.Since(start))
	})
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// ObserveRender records a rendered metadata document.
func ObserveRender(route, source string) {
	seoRendersTotal.WithLabelValues(route, source).Inc()
}

// ObserveGatewayRequest records the outcome of one upstream gateway call.
// Network-level failures are recorded with code "error".
func ObserveGatewayRequest(endpoint string, code int) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	gatewayRequestsTotal.WithLabelValues(endpoint, label).Inc()
}

// ObserveHTTPRequest records metrics for an HTTP request.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetSitemapEntries records the size of the last sitemap build.
func SetSitemapEntries(n int) {
	sitemapEntries.Set(float64(n))
}
