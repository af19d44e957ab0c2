package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outage_fetch_total",
			Help: "Planned-outage fetches per city and result.",
		},
		[]string{"city", "result"},
	)

	fetchLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outage_fetch_latency_ms",
			Help:    "Planned-outage fetch latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"city", "result"},
	)
)

func init() {
	register(fetchTotal, fetchLatencyMs)
}

// ObserveFetch records one upstream fetch attempt. result is one of
// "ok", "network_error", "upstream_error", "bad_json".
func ObserveFetch(city, result string, elapsed time.Duration) {
	fetchTotal.WithLabelValues(city, result).Inc()
	fetchLatencyMs.WithLabelValues(city, result).Observe(float64(elapsed.Milliseconds()))
}
