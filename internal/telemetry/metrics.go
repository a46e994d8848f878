package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PipelineBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loom_pipeline_builds_total",
		Help: "Pipeline builds by outcome.",
	}, []string{"status"})

	StepsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_pipeline_steps_resolved_total",
		Help: "Transform steps resolved into built pipelines.",
	})

	LinesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_engine_lines_total",
		Help: "Input lines run through the pipeline by the engine.",
	})

	ApplySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "loom_pipeline_apply_seconds",
		Help:    "Wall time of a single pipeline application.",
		Buckets: prometheus.DefBuckets,
	})
)

// Expose serves /metrics on the given port in the background.
func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
