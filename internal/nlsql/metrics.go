package nlsql

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// pipelineMetrics counts pipeline outcomes. Counters come from the global
// meter provider; with no SDK installed they are no-ops.
type pipelineMetrics struct {
	runs     metric.Int64Counter
	rejected metric.Int64Counter
	failures metric.Int64Counter
}

func newPipelineMetrics() *pipelineMetrics {
	meter := otel.Meter("querycraft/backend/internal/nlsql")

	runs, _ := meter.Int64Counter("querycraft.pipeline.runs",
		metric.WithDescription("Pipeline runs started"))
	rejected, _ := meter.Int64Counter("querycraft.pipeline.rejections",
		metric.WithDescription("Candidate statements rejected by the validator"))
	failures, _ := meter.Int64Counter("querycraft.pipeline.execution_failures",
		metric.WithDescription("Store-side failures executing validated statements"))

	return &pipelineMetrics{
		runs:     runs,
		rejected: rejected,
		failures: failures,
	}
}
