package telemetry

import (
	"context"

	"go.trai.ch/macsdk/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing.
type NoOpTracer struct{}

// NewNoOpTracer returns a tracer that discards all spans.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) End() {}

func (noOpSpan) RecordError(error) {}

func (noOpSpan) SetAttribute(string, any) {}

var _ ports.Tracer = (*NoOpTracer)(nil)
