package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartServiceSpan_RecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := Tracer
	Tracer = tp.Tracer("test")
	t.Cleanup(func() { Tracer = previous })

	run := func() (err error) {
		span, _ := StartServiceSpan(context.Background(), "PostService", "DeletePost")
		defer span.Finish(&err)
		return errors.New("boom")
	}
	require.Error(t, run())

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "PostService.DeletePost", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}
