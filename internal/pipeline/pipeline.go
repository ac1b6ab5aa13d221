// Package pipeline sequences the per-event monitoring stages: outcome gate,
// context extraction, noise filtering, fingerprinting, deduplication, AI
// analysis, notification delivery, and fingerprint recording.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/tailwatch/tailwatch/internal/ai"
	"github.com/tailwatch/tailwatch/internal/dedup"
	"github.com/tailwatch/tailwatch/internal/event"
	"github.com/tailwatch/tailwatch/internal/metrics"
	"github.com/tailwatch/tailwatch/internal/notify"
	"github.com/tailwatch/tailwatch/pkg/models"
)

// Summarizer produces the notification summary for an error context.
type Summarizer interface {
	Summarize(ctx context.Context, ec models.ErrorContext) string
}

// Pipeline processes batches of tail events. Events are handled
// sequentially and independently; no event's outcome affects another's.
type Pipeline struct {
	dedup     dedup.Store
	engine    Summarizer
	sink      notify.Sink
	username  string
	iconEmoji string
	metrics   *metrics.Metrics
}

// New creates a Pipeline.
func New(store dedup.Store, engine Summarizer, sink notify.Sink, username, iconEmoji string, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		dedup:     store,
		engine:    engine,
		sink:      sink,
		username:  username,
		iconEmoji: iconEmoji,
		metrics:   m,
	}
}

// BatchResult summarizes what happened to a batch. DeliveryFailed events
// completed the pipeline (and were recorded) but the webhook rejected them.
type BatchResult struct {
	Received       int `json:"received"`
	Skipped        int `json:"skipped"`
	Ignored        int `json:"ignored"`
	Duplicates     int `json:"duplicates"`
	Notified       int `json:"notified"`
	DeliveryFailed int `json:"delivery_failed"`
	Failed         int `json:"failed"`
}

type eventOutcome int

const (
	outcomeSkipped eventOutcome = iota
	outcomeIgnored
	outcomeDuplicate
	outcomeNotified
	outcomeDeliveryFailed
	outcomeFailed
)

// ProcessBatch runs every event through the pipeline in order. A failure in
// any stage is contained to its event and never aborts the batch.
func (p *Pipeline) ProcessBatch(ctx context.Context, events []models.TailEvent) BatchResult {
	res := BatchResult{Received: len(events)}

	for _, ev := range events {
		switch p.processEvent(ctx, ev) {
		case outcomeSkipped:
			res.Skipped++
		case outcomeIgnored:
			res.Ignored++
		case outcomeDuplicate:
			res.Duplicates++
		case outcomeNotified:
			res.Notified++
		case outcomeDeliveryFailed:
			res.DeliveryFailed++
		case outcomeFailed:
			res.Failed++
		}
	}

	return res
}

func (p *Pipeline) processEvent(ctx context.Context, ev models.TailEvent) (out eventOutcome) {
	// Contain anything unexpected to this one event.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic processing event", "script", ev.ScriptName, "error", r)
			p.metrics.EventsFailed.Inc()
			out = outcomeFailed
		}
	}()

	// Only failures are monitored.
	if !ev.IsExceptional() {
		return outcomeSkipped
	}
	p.metrics.EventsReceived.Inc()

	ec := event.BuildContext(ev)

	if event.ShouldIgnore(ec.URL) {
		slog.Info("ignoring noise event", "script", ec.ScriptName, "url", ec.URL)
		p.metrics.EventsIgnored.Inc()
		return outcomeIgnored
	}

	fp, err := event.Fingerprint(ec)
	if err != nil {
		slog.Error("fingerprinting failed, dropping event", "script", ec.ScriptName, "error", err)
		p.metrics.EventsFailed.Inc()
		return outcomeFailed
	}

	if p.dedup.IsDuplicate(ctx, fp) {
		slog.Info("duplicate error suppressed", "script", ec.ScriptName, "fingerprint", fp)
		p.metrics.Duplicates.Inc()
		return outcomeDuplicate
	}

	summary := p.engine.Summarize(ctx, ec)
	if summary == ai.FallbackSummary {
		p.metrics.AnalysisFallbacks.Inc()
	}

	msg := notify.BuildMessage(ec, summary, p.username, p.iconEmoji)
	deliverErr := p.sink.Deliver(ctx, msg)
	if deliverErr != nil {
		slog.Error("notification delivery failed", "script", ec.ScriptName, "fingerprint", fp, "error", deliverErr)
		p.metrics.DeliveryFailures.Inc()
	} else {
		p.metrics.Notified.Inc()
	}

	// Record after the delivery attempt, not after delivery success: a
	// failed delivery still counts as seen for the rest of the window.
	p.dedup.Record(ctx, fp)

	if deliverErr != nil {
		return outcomeDeliveryFailed
	}
	return outcomeNotified
}
