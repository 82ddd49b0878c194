// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	MatchingJobsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_jobs_scored_total",
			Help: "Total number of job postings scored across all runs",
		},
	)

	MatchingJobsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_jobs_skipped_total",
			Help: "Total number of malformed job postings skipped",
		},
	)

	MatchingRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "matching_run_duration_seconds",
			Help: "Duration of full score-and-rank runs in seconds",
		},
	)
)
