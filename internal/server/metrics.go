package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathai_http_requests_total",
		Help: "Total number of HTTP requests served.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mathai_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	attemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathai_attempts_total",
		Help: "Graded answer attempts by outcome.",
	}, []string{"correct"})

	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathai_solve_total",
		Help: "Solve requests by answering source.",
	}, []string{"source"})
)

func observeRequest(method, path string, status int, d time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
