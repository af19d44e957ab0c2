package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Handled Telegram updates per kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	editsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_edits_skipped_total",
			Help: "In-place edits skipped because the message content was unchanged.",
		},
	)
)

func init() {
	register(updatesTotal, editsSkipped)
}

// IncUpdate records one handled update. kind is "command", "callback" or
// "message"; outcome is "ok", "error", "bad_data" or "rate_limited".
func IncUpdate(kind, outcome string) {
	updatesTotal.WithLabelValues(kind, outcome).Inc()
}

func IncEditSkipped() {
	editsSkipped.Inc()
}
