package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/config"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	for name, cfg := range map[string]config.Config{
		"no endpoint":  {OTelEnabled: true},
		"switched off": {OTelEnabled: false, OTelEndpoint: "http://192.0.2.1:4318"},
	} {
		shutdown, err := Setup(context.Background(), cfg)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := shutdown(ctx); err != nil {
			t.Errorf("%s: noop shutdown should not error: %v", name, err)
		}
	}
}

func TestSetup_InstallsProvider(t *testing.T) {
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	// Non-routable address so nothing is exported.
	cfg := config.Config{OTelEnabled: true, OTelEndpoint: "http://192.0.2.1:4318"}
	shutdown, err := Setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := otel.GetTextMapPropagator().Fields()
	if len(fields) < 2 {
		t.Errorf("Expected traceparent and baggage fields, got %v", fields)
	}
	// Ended after shutdown so the batcher has nothing to send.
	_, span := Tracer().Start(context.Background(), "wheel.spin")
	if !span.SpanContext().IsSampled() {
		t.Error("Expected root spans to be sampled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
	span.End()
}

func TestTracerStartsSpans(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "test")
	defer span.End()
	if span == nil {
		t.Fatal("Expected a span")
	}
}
