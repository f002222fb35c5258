package engine

import (
	"fmt"
	"io"
	"time"
)

// Stage identifies one pipeline step in emitted events.
type Stage string

const (
	StageResolveContext Stage = "resolve_context"
	StageExtractSlots   Stage = "extract_slots"
	StageResolveSeason  Stage = "resolve_season"
	StageRecommend      Stage = "recommend_products"
	StageCompose        Stage = "compose_rationale"
)

// PipelineEvent records one completed pipeline stage. RequestID correlates
// the stages of a single request.
type PipelineEvent struct {
	RequestID string
	Stage     Stage
	LatencyMs int64
	Status    string
}

// Observer receives pipeline events for logging and metrics.
type Observer interface {
	OnStageComplete(event PipelineEvent)
}

// LogObserver writes pipeline events to an io.Writer, one line per stage.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnStageComplete(event PipelineEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] pipeline_stage request=%s stage=%s latency_ms=%d status=%s\n",
		ts, event.RequestID, event.Stage, event.LatencyMs, event.Status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnStageComplete(PipelineEvent) {}
