package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupInMemoryTracing(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
	})

	return exp
}

func TestStartSpan(t *testing.T) {
	t.Run("creates span with the given name", func(t *testing.T) {
		exp := setupInMemoryTracing(t)

		_, span := StartSpan(context.Background(), "CatalogRepository.List")
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Name != "CatalogRepository.List" {
			t.Errorf("expected span name CatalogRepository.List, got %s", spans[0].Name)
		}
	})

	t.Run("nested spans share a trace", func(t *testing.T) {
		exp := setupInMemoryTracing(t)

		ctx, parent := StartSpan(context.Background(), "parent")
		_, child := StartSpan(ctx, "child")
		child.End()
		parent.End()

		spans := exp.GetSpans()
		if len(spans) != 2 {
			t.Fatalf("expected 2 spans, got %d", len(spans))
		}
		if spans[0].SpanContext.TraceID() != spans[1].SpanContext.TraceID() {
			t.Error("expected child and parent to share a trace ID")
		}
	})
}

func TestAddSpanAttributes(t *testing.T) {
	t.Run("adds attributes to span", func(t *testing.T) {
		exp := setupInMemoryTracing(t)

		_, span := StartSpan(context.Background(), "test")
		AddSpanAttributes(span, attribute.String("order.id", "ORD-1"))
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}

		found := false
		for _, attr := range spans[0].Attributes {
			if attr.Key == "order.id" && attr.Value.AsString() == "ORD-1" {
				found = true
			}
		}
		if !found {
			t.Error("expected order.id attribute on span")
		}
	})

	t.Run("tolerates nil span", func(t *testing.T) {
		AddSpanAttributes(nil, attribute.String("key", "value"))
	})
}

func TestAddSpanEvent(t *testing.T) {
	t.Run("adds event to span", func(t *testing.T) {
		exp := setupInMemoryTracing(t)

		_, span := StartSpan(context.Background(), "test")
		AddSpanEvent(span, "order_dispatched")
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if len(spans[0].Events) != 1 || spans[0].Events[0].Name != "order_dispatched" {
			t.Errorf("expected order_dispatched event, got %+v", spans[0].Events)
		}
	})

	t.Run("tolerates nil span", func(t *testing.T) {
		AddSpanEvent(nil, "event")
	})
}

func TestRecordSpanError(t *testing.T) {
	t.Run("records error and sets error status", func(t *testing.T) {
		exp := setupInMemoryTracing(t)

		_, span := StartSpan(context.Background(), "test")
		RecordSpanError(span, errors.New("boom"))
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Status.Code != codes.Error {
			t.Errorf("expected error status, got %v", spans[0].Status.Code)
		}
		if len(spans[0].Events) == 0 {
			t.Error("expected error event recorded on span")
		}
	})

	t.Run("tolerates nil span and nil error", func(t *testing.T) {
		RecordSpanError(nil, errors.New("boom"))

		_, span := StartSpan(context.Background(), "test")
		RecordSpanError(span, nil)
		span.End()
	})
}

func TestSetSpanSuccess(t *testing.T) {
	t.Run("sets span status to OK", func(t *testing.T) {
		exp := setupInMemoryTracing(t)

		_, span := StartSpan(context.Background(), "test")
		SetSpanSuccess(span)
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Status.Code != codes.Ok {
			t.Errorf("expected OK status, got %v", spans[0].Status.Code)
		}
	})

	t.Run("tolerates nil span", func(t *testing.T) {
		SetSpanSuccess(nil)
	})
}

func TestTraceAndSpanID(t *testing.T) {
	t.Run("extracts IDs from context with span", func(t *testing.T) {
		setupInMemoryTracing(t)

		ctx, span := StartSpan(context.Background(), "test")
		defer span.End()

		if TraceID(ctx) == "" {
			t.Error("expected non-empty trace ID")
		}
		if SpanID(ctx) == "" {
			t.Error("expected non-empty span ID")
		}
	})

	t.Run("returns empty strings without a span", func(t *testing.T) {
		ctx := context.Background()

		if id := TraceID(ctx); id != "" {
			t.Errorf("expected empty trace ID, got %s", id)
		}
		if id := SpanID(ctx); id != "" {
			t.Errorf("expected empty span ID, got %s", id)
		}
	})
}
