package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query pipeline Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqd",
			Name:      "queries_total",
			Help:      "Total number of processed queries by terminal status",
		},
		[]string{"status"}, // "success" / "error" / "refusal" / "no_match"
	)

	MatchSimilarity = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "faqd",
			Name:      "match_similarity",
			Help:      "Combined similarity score of accepted matches",
			Buckets:   []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1},
		},
	)

	PIIDetectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqd",
			Name:      "pii_detections_total",
			Help:      "Total PII detections by kind",
		},
		[]string{"kind"},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers Prometheus query metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(MatchSimilarity)
	prometheus.MustRegister(PIIDetectionsTotal)
	queryMetricsRegistered = true
}
