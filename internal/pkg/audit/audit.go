// Package audit emits structured events for voucher lifecycle milestones.
// Emission is fire-and-forget: sinks must never block the transactional path.
package audit

import (
	"context"
	"log/slog"
	"time"
)

const (
	EventVoucherIssued       = "voucher_issued"
	EventRedemptionSucceeded = "redemption_succeeded"
	EventRedemptionConflict  = "redemption_conflict"
	EventVoucherCancelled    = "voucher_cancelled"
)

type Event struct {
	Kind       string
	OccurredAt time.Time
	Fields     map[string]any
}

type Sink interface {
	Emit(ctx context.Context, ev Event)
}

type slogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) Sink {
	return &slogSink{logger: logger}
}

func (s *slogSink) Emit(_ context.Context, ev Event) {
	attrs := make([]any, 0, 2+2*len(ev.Fields))
	attrs = append(attrs, "event", ev.Kind, "occurred_at", ev.OccurredAt)
	for k, v := range ev.Fields {
		attrs = append(attrs, k, v)
	}
	s.logger.Info("audit", attrs...)
}

// NopSink discards events; used in tests.
type NopSink struct{}

func (NopSink) Emit(context.Context, Event) {}
