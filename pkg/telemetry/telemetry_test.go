package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "hover.transition")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not be recording")
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := Tracer("hover").Start(context.Background(), "hover.transition")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != "aura/hover" {
		t.Errorf("instrumentation scope = %q, want %q", got, "aura/hover")
	}
}
