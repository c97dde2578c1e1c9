// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gameforge_jobs_created_total",
			Help: "Total number of generation jobs created",
		},
	)

	JobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gameforge_jobs_completed_total",
			Help: "Total number of jobs finalized, by terminal state",
		},
		[]string{"state"},
	)

	JobsDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gameforge_jobs_degraded_total",
			Help: "Jobs finalized with a fallback artifact, by absorbed error code",
		},
		[]string{"error_code"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gameforge_stage_duration_seconds",
			Help: "Duration of pipeline stages in seconds",
		},
		[]string{"stage"},
	)

	JobsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gameforge_jobs_active",
			Help: "Number of jobs currently generating",
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gameforge_catalog_templates",
			Help: "Number of templates in the loaded catalog",
		},
	)
)
