package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/macsdk/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "probe")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
