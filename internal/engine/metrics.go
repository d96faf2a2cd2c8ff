package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	TranscriptRequests atomic.Int64
	TranscriptErrors   atomic.Int64
	PageScrapeRequests atomic.Int64
	OEmbedRequests     atomic.Int64
	PipelineRuns       atomic.Int64
	PipelineFailures   atomic.Int64
	QuestionsAnswered  atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"llm_calls":            metrics.LLMCalls.Load(),
		"llm_errors":           metrics.LLMErrors.Load(),
		"transcript_requests":  metrics.TranscriptRequests.Load(),
		"transcript_errors":    metrics.TranscriptErrors.Load(),
		"page_scrape_requests": metrics.PageScrapeRequests.Load(),
		"oembed_requests":      metrics.OEmbedRequests.Load(),
		"pipeline_runs":        metrics.PipelineRuns.Load(),
		"pipeline_failures":    metrics.PipelineFailures.Load(),
		"questions_answered":   metrics.QuestionsAnswered.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"llm_calls", "llm_errors",
		"transcript_requests", "transcript_errors",
		"page_scrape_requests", "oembed_requests",
		"pipeline_runs", "pipeline_failures",
		"questions_answered",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func IncrLLMCalls()  { metrics.LLMCalls.Add(1) }
func IncrLLMErrors() { metrics.LLMErrors.Add(1) }

// Incrementors for sources/ sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptErrors()   { metrics.TranscriptErrors.Add(1) }
func IncrPageScrapeRequests() { metrics.PageScrapeRequests.Add(1) }
func IncrOEmbedRequests()     { metrics.OEmbedRequests.Add(1) }

// Incrementors for study/ sub-package.
func IncrPipelineRuns()      { metrics.PipelineRuns.Add(1) }
func IncrPipelineFailures()  { metrics.PipelineFailures.Add(1) }
func IncrQuestionsAnswered() { metrics.QuestionsAnswered.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
