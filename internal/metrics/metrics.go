package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Session resolutions: ok|rejected
	AuthResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_resolutions_total",
			Help: "Session resolver outcomes",
		},
		[]string{"result"},
	)

	// Login attempts: success|failure
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login outcomes",
		},
		[]string{"result"},
	)

	// create|update|delete|like|comment|uncomment
	PostMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_mutations_total",
			Help: "Successful post mutations",
		},
		[]string{"action"},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestLatency)
	prometheus.MustRegister(AuthResolutions)
	prometheus.MustRegister(LoginAttempts)
	prometheus.MustRegister(PostMutations)
}
