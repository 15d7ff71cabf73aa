package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"go.trai.ch/macsdk/internal/adapters/telemetry"
)

// newRecordingTracer returns a tracer whose finished spans land in the
// returned recorder.
func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return telemetry.NewTracerFrom(tp.Tracer("test")), recorder
}

func TestOTelTracer_Start(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	ctx, span := tracer.Start(t.Context(), "probe.developer_directory")
	require.NotNil(t, ctx)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "probe.developer_directory", ended[0].Name())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(t.Context(), "probe")
	span.RecordError(errors.New("command failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "command failed", ended[0].Status().Description)
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(t.Context(), "probe")
	span.SetAttribute("package_id", "com.apple.pkg.CLTools_Executables")
	span.SetAttribute("count", 3)
	span.SetAttribute("cached", true)
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := ended[0].Attributes()
	assert.Contains(t, attrs, attribute.String("package_id", "com.apple.pkg.CLTools_Executables"))
	assert.Contains(t, attrs, attribute.Int("count", 3))
	assert.Contains(t, attrs, attribute.Bool("cached", true))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}
