package provider

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/penflow/llmkit/logger"
	"github.com/penflow/llmkit/observability"
)

type taggingMiddleware struct {
	inner RequestResponse[string, string]
	tag   string
}

func (m *taggingMiddleware) Name() string                       { return m.inner.Name() }
func (m *taggingMiddleware) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }
func (m *taggingMiddleware) Execute(ctx context.Context, in string) (string, error) {
	out, err := m.inner.Execute(ctx, in+m.tag)
	return out, err
}

func tagWith(tag string) Middleware[string, string] {
	return func(inner RequestResponse[string, string]) RequestResponse[string, string] {
		return &taggingMiddleware{inner: inner, tag: tag}
	}
}

func TestChain_OrdersOutsideIn(t *testing.T) {
	base := &fakeProvider{name: "base", available: true}
	wrapped := Chain(tagWith("-a"), tagWith("-b"), tagWith("-c"))(base)

	out, err := wrapped.Execute(context.Background(), "in")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// First middleware runs first on the way in.
	if out != "echo:in-a-b-c" {
		t.Errorf("out = %q", out)
	}
}

func TestChain_Empty(t *testing.T) {
	base := &fakeProvider{name: "base", available: true}
	wrapped := Chain[string, string]()(base)
	if wrapped != RequestResponse[string, string](base) {
		t.Error("empty chain should return the provider unchanged")
	}
}

func TestWithLogging_PassesThrough(t *testing.T) {
	log := logger.NewDefault("test")
	base := &fakeProvider{name: "logged", available: true}
	wrapped := WithLogging[string, string](log)(base)

	if wrapped.Name() != "logged" {
		t.Errorf("name = %q", wrapped.Name())
	}
	if !wrapped.IsAvailable(context.Background()) {
		t.Error("IsAvailable should delegate")
	}

	out, err := wrapped.Execute(context.Background(), "x")
	if err != nil || out != "echo:x" {
		t.Errorf("Execute = %q, %v", out, err)
	}
}

func TestWithLogging_PropagatesError(t *testing.T) {
	log := logger.NewDefault("test")
	boom := errors.New("provider down")
	base := &fakeProvider{name: "failing", execErr: boom}
	wrapped := WithLogging[string, string](log)(base)

	if _, err := wrapped.Execute(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want original error", err)
	}
}

func TestWithTracing_PassesThrough(t *testing.T) {
	base := &fakeProvider{name: "traced", available: true}
	wrapped := WithTracing[string, string]("svc")(base)

	out, err := wrapped.Execute(context.Background(), "y")
	if err != nil || out != "echo:y" {
		t.Errorf("Execute = %q, %v", out, err)
	}
	if wrapped.Name() != "traced" {
		t.Errorf("name = %q", wrapped.Name())
	}
}

func TestWithMetrics_PassesThrough(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := observability.NewMetrics(meter)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	base := &fakeProvider{name: "measured", available: true}
	wrapped := WithMetrics[string, string](metrics, "generate")(base)

	out, err := wrapped.Execute(context.Background(), "z")
	if err != nil || out != "echo:z" {
		t.Errorf("Execute = %q, %v", out, err)
	}
	if !wrapped.IsAvailable(context.Background()) {
		t.Error("IsAvailable should delegate")
	}

	boom := errors.New("backend down")
	failing := &fakeProvider{name: "measured", execErr: boom}
	wrapped = WithMetrics[string, string](metrics, "generate")(failing)
	if _, err := wrapped.Execute(context.Background(), "z"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want original error", err)
	}
}
