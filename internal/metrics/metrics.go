package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	UpstreamOONI = "ooni"
	UpstreamMLab = "mlab"
)

var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "measurements_api_upstream_requests_total",
		Help: "Total upstream calls by upstream, operation and outcome",
	}, []string{"upstream", "op", "outcome"})
	UpstreamDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "measurements_api_upstream_duration_seconds",
		Help:    "Upstream call duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"upstream", "op"})
	FallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "measurements_api_fallbacks_total",
		Help: "Times a discovery call answered with static data",
	}, []string{"upstream", "op"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "measurements_api_http_requests_total",
		Help: "Inbound HTTP requests by route pattern and status code",
	}, []string{"route", "code"})
)

func init() {
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamDurationSeconds)
	prometheus.MustRegister(FallbacksTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
}

// ObserveUpstream records one upstream call started at t0.
func ObserveUpstream(upstream, op string, t0 time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(upstream, op, outcome).Inc()
	UpstreamDurationSeconds.WithLabelValues(upstream, op).Observe(time.Since(t0).Seconds())
}

func Fallback(upstream, op string) {
	FallbacksTotal.WithLabelValues(upstream, op).Inc()
}

func Handler() http.Handler { return promhttp.Handler() }
