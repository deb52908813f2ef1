package otel_test

import (
	"context"
	"errors"
	"hauliday/config"
	"hauliday/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hauliday-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Test")
	assert.NotNil(t, ctx)
	scope.End()

	assert.NoError(t, tracer.Flush(context.Background()))
}

func newRecorded() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()

	return otel.NewWithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder))), recorder
}

func TestScope_Attributes(t *testing.T) {
	tracer, recorder := newRecorded()

	_, scope := tracer.NewScope(context.Background(), "service", "service.IsAvailable")
	scope.SetAttributes(map[string]any{
		"equipment_id": "cotton-candy",
		"days":         3,
		"limit":        int32(5),
		"available":    true,
		"price":        40.5,
		"features":     []string{"a", "b"},
	})
	scope.AddEvent("checked")
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.IsAvailable", spans[0].Name())
	assert.Len(t, spans[0].Events(), 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "cotton-candy", attrs["equipment_id"].AsString())
	assert.Equal(t, int64(3), attrs["days"].AsInt64())
	assert.Equal(t, int64(5), attrs["limit"].AsInt64())
	assert.True(t, attrs["available"].AsBool())
	assert.InDelta(t, 40.5, attrs["price"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"a", "b"}, attrs["features"].AsStringSlice())
}

func TestScope_TraceIfError(t *testing.T) {
	tracer, recorder := newRecorded()

	run := func(fail bool) (err error) {
		_, scope := tracer.NewScope(context.Background(), "service", "service.Run")
		defer scope.End()
		defer scope.TraceIfError(&err)

		if fail {
			err = errors.New("table unavailable")
		}

		return err
	}

	require.NoError(t, run(false))
	require.Error(t, run(true))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "table unavailable", spans[1].Status().Description)
}
