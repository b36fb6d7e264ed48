package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg              *prometheus.Registry
	Submissions      *prometheus.CounterVec
	Previews         *prometheus.CounterVec
	PrintServiceTime *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "console_submissions_total",
		Help: "Submission attempts by payload type and outcome.",
	}, []string{"payload_type", "status"})
	previews := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "console_previews_total",
		Help: "Rendered previews by source and cache result.",
	}, []string{"source", "cache"})
	printService := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "console_print_service_seconds",
		Help:    "Latency of print service calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "console_http_requests_total",
		Help: "Console API requests by route and status code.",
	}, []string{"method", "route", "code"})

	r.MustRegister(submissions, previews, printService, httpRequests)
	return &Registry{
		reg:              r,
		Submissions:      submissions,
		Previews:         previews,
		PrintServiceTime: printService,
		HTTPRequests:     httpRequests,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) RecordSubmission(payloadType, status string) {
	r.Submissions.WithLabelValues(payloadType, status).Inc()
}

func (r *Registry) RecordPreview(source, cacheResult string) {
	r.Previews.WithLabelValues(source, cacheResult).Inc()
}

func (r *Registry) ObservePrintService(operation, outcome string, elapsed time.Duration) {
	r.PrintServiceTime.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

func (r *Registry) RecordRequest(method, route string, code int) {
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}
