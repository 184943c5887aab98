package analysis

import (
	"fmt"
	"io"
	"time"
)

// AnalysisEvent records metadata about a single completed analysis.
type AnalysisEvent struct {
	TextLength int
	Matches    int
	Confidence float64
	LatencyMs  int64
	CacheHit   bool
	Err        string
}

// Observer receives events about analysis runs for logging and metrics.
type Observer interface {
	OnAnalysisComplete(event AnalysisEvent)
}

// LogObserver writes analysis events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnAnalysisComplete(event AnalysisEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if event.Err != "" {
		status = "err:" + event.Err
	}
	fmt.Fprintf(o.w, "[%s] analysis text_len=%d matches=%d confidence=%.2f latency_ms=%d cache_hit=%t status=%s\n",
		ts, event.TextLength, event.Matches, event.Confidence, event.LatencyMs, event.CacheHit, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnAnalysisComplete(AnalysisEvent) {}
