package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query engine Prometheus metrics.
var (
	QueryExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "papers",
			Name:      "query_executions_total",
			Help:      "Total number of paper queries executed",
		},
		[]string{"sort_by", "sort_order"},
	)

	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "papers",
			Name:      "query_duration_seconds",
			Help:      "Paper query execution time in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	QueryMatchedRecords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "papers",
			Name:      "query_matched_records",
			Help:      "Records matching a query before pagination",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		},
	)

	QueryFiltersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "papers",
			Name:      "query_filters_total",
			Help:      "Filters applied to paper queries, by filter name",
		},
		[]string{"filter"},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers Prometheus query metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueryExecutionsTotal)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(QueryMatchedRecords)
	prometheus.MustRegister(QueryFiltersTotal)
	queryMetricsRegistered = true
}
