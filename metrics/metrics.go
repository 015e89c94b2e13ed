// Package metrics exposes Prometheus collectors for runs, playback and
// authoring. Collectors register on the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathstep_runs_built_total",
		Help: "Total number of step logs recorded.",
	})

	RunsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathstep_runs_failed_total",
		Help: "Total number of run requests rejected, labelled by reason.",
	}, []string{"reason"})

	StepsPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathstep_steps_per_run",
		Help:    "Number of steps recorded per run.",
		Buckets: []float64{2, 5, 10, 25, 50, 100, 250, 500},
	})

	BuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathstep_build_duration_seconds",
		Help:    "Time spent recording one step log.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})

	AuthoringRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathstep_authoring_rejected_total",
		Help: "Total number of authoring operations rejected, labelled by reason.",
	}, []string{"reason"})

	CursorMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathstep_cursor_moves_total",
		Help: "Total number of playback cursor operations, labelled by operation.",
	}, []string{"op"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pathstep_active_sessions",
		Help: "Number of sessions currently held by the server.",
	})
)
