package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_FormatsEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnAnalysisComplete(AnalysisEvent{
		TextLength: 42,
		Matches:    3,
		Confidence: 0.815,
		LatencyMs:  7,
		CacheHit:   true,
	})

	line := buf.String()
	assert.Contains(t, line, "text_len=42")
	assert.Contains(t, line, "matches=3")
	assert.Contains(t, line, "confidence=0.82")
	assert.Contains(t, line, "latency_ms=7")
	assert.Contains(t, line, "cache_hit=true")
	assert.Contains(t, line, "status=ok")
}

func TestLogObserver_FormatsError(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnAnalysisComplete(AnalysisEvent{Err: "analysis panic: boom"})
	assert.Contains(t, buf.String(), "status=err:analysis panic: boom")
}
