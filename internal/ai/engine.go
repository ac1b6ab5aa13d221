// Package ai drives the two-stage analysis of error contexts: a detailed
// causal analysis on a reasoning model, condensed by a fast instruction
// model into the short summary that ships in the notification.
package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tailwatch/tailwatch/pkg/models"
)

// FallbackSummary is delivered when either inference stage fails. The
// notification still goes out, just without an analysis.
const FallbackSummary = "Unable to generate AI analysis"

// Engine runs the two-stage summarization chain against an AIProvider.
type Engine struct {
	provider      models.AIProvider
	analysisModel string
	summaryModel  string
	timeout       time.Duration
}

// NewEngine creates an Engine. analysisModel handles the expensive deep
// reasoning pass; summaryModel handles the cheap condensation pass.
func NewEngine(provider models.AIProvider, analysisModel, summaryModel string, timeout time.Duration) *Engine {
	return &Engine{
		provider:      provider,
		analysisModel: analysisModel,
		summaryModel:  summaryModel,
		timeout:       timeout,
	}
}

// Summarize produces a 2-3 sentence summary of the error, or FallbackSummary
// on any failure. It never returns an error: inference problems must not
// block the notification.
func (e *Engine) Summarize(ctx context.Context, ec models.ErrorContext) string {
	analysis, err := e.complete(ctx, e.analysisModel, BuildAnalysisPrompt(ec))
	if err != nil {
		slog.Error("analysis stage failed", "script", ec.ScriptName, "model", e.analysisModel, "error", err)
		return FallbackSummary
	}

	summary, err := e.complete(ctx, e.summaryModel, BuildSummaryPrompt(analysis))
	if err != nil {
		slog.Error("summary stage failed", "script", ec.ScriptName, "model", e.summaryModel, "error", err)
		return FallbackSummary
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		slog.Error("summary stage returned empty response", "script", ec.ScriptName, "model", e.summaryModel)
		return FallbackSummary
	}
	return summary
}

func (e *Engine) complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.provider.Complete(callCtx, model, messages)
}
