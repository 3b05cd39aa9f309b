package metrics

import "github.com/prometheus/client_golang/prometheus"

// Per-source fetch instrumentation. Nothing in the pipeline reads these; the
// /metrics endpoint exposes them for dashboards.

var (
	FetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobseek",
		Name:      "source_fetch_total",
		Help:      "Adapter invocations by source and outcome.",
	}, []string{"source", "outcome"})

	FetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jobseek",
		Name:      "source_fetch_duration_seconds",
		Help:      "Adapter fetch latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	JobsReturned = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobseek",
		Name:      "jobs_returned_total",
		Help:      "Normalized records produced, by source label.",
	}, []string{"source"})
)

func init() {
	prometheus.MustRegister(FetchTotal, FetchDuration, JobsReturned)
}
