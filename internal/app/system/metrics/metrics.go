// internal/app/system/metrics/metrics.go

// Package metrics collects Prometheus metrics for the API and serves
// them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers request-level and domain-level counters.
type Collector struct {
	requests     *prometheus.CounterVec
	duration     prometheus.Histogram
	postsCreated prometheus.Counter
	claims       *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sharetable_http_requests_total",
			Help: "HTTP requests by method, route pattern, and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sharetable_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sharetable_posts_created_total",
			Help: "Food posts created.",
		}),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sharetable_claims_total",
			Help: "Claim attempts by result (accepted, conflict, not_found).",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.requests,
		c.duration,
		c.postsCreated,
		c.claims,
	)

	return c
}

// RecordPostCreated counts a successfully created post.
func (c *Collector) RecordPostCreated() {
	c.postsCreated.Inc()
}

// RecordClaim counts a claim attempt by outcome.
func (c *Collector) RecordClaim(result string) {
	c.claims.WithLabelValues(result).Inc()
}

// Middleware observes every request: method, resolved chi route pattern,
// status code, and latency. Mount it before the routes it should see.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		c.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.status)).Inc()
		c.duration.Observe(time.Since(start).Seconds())
	})
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// statusWriter captures the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
