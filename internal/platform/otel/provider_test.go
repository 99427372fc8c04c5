package otel

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), config.TracingConfig{})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}

func TestNewTracerProvider_SamplesAndRecords(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp, err := newTracerProvider(context.Background(),
		config.TracingConfig{ServiceName: "stargate-test", SampleRatio: 1},
		sdktrace.WithSpanProcessor(recorder),
	)
	if err != nil {
		t.Fatalf("newTracerProvider returned error: %v", err)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	found := false
	for _, attr := range spans[0].Resource().Attributes() {
		if string(attr.Key) == "service.name" && attr.Value.AsString() == "stargate-test" {
			found = true
		}
	}
	if !found {
		t.Fatal("service.name resource attribute missing")
	}
}

func TestNewTracerProvider_ZeroRatioDropsRootSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp, err := newTracerProvider(context.Background(),
		config.TracingConfig{ServiceName: "stargate-test", SampleRatio: 0},
		sdktrace.WithSpanProcessor(recorder),
	)
	if err != nil {
		t.Fatalf("newTracerProvider returned error: %v", err)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	if got := len(recorder.Ended()); got != 0 {
		t.Fatalf("expected no sampled spans, got %d", got)
	}
}
