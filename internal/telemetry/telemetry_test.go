package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		SampleRate:     1.0,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts a valid config", func(t *testing.T) {
		cfg := validConfig()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() failed: %v", err)
		}
	})

	t.Run("rejects missing service name", func(t *testing.T) {
		cfg := validConfig()
		cfg.ServiceName = ""
		if err := cfg.Validate(); !errors.Is(err, ErrMissingServiceName) {
			t.Errorf("expected ErrMissingServiceName, got %v", err)
		}
	})

	t.Run("rejects missing service version", func(t *testing.T) {
		cfg := validConfig()
		cfg.ServiceVersion = ""
		if err := cfg.Validate(); !errors.Is(err, ErrMissingServiceVersion) {
			t.Errorf("expected ErrMissingServiceVersion, got %v", err)
		}
	})

	t.Run("rejects sample rate outside 0.0-1.0", func(t *testing.T) {
		for _, rate := range []float64{-0.1, 1.1} {
			cfg := validConfig()
			cfg.SampleRate = rate
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidSampleRate) {
				t.Errorf("rate %v: expected ErrInvalidSampleRate, got %v", rate, err)
			}
		}
	})

	t.Run("accepts boundary sample rates", func(t *testing.T) {
		for _, rate := range []float64{0.0, 1.0} {
			cfg := validConfig()
			cfg.SampleRate = rate
			if err := cfg.Validate(); err != nil {
				t.Errorf("rate %v: Validate() failed: %v", rate, err)
			}
		}
	})
}

func TestInitialize(t *testing.T) {
	t.Run("returns error when config is invalid", func(t *testing.T) {
		cfg := validConfig()
		cfg.ServiceName = ""

		tel, err := Initialize(context.Background(), cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if tel != nil {
			t.Error("expected nil telemetry on error")
		}
	})

	t.Run("initializes tracing and metrics when enabled", func(t *testing.T) {
		cfg := validConfig()
		cfg.EnableTracing = true
		cfg.EnableMetrics = true

		tel, err := Initialize(context.Background(), cfg,
			WithTraceExporter(NewNoopTraceExporter()),
			WithMetricExporter(NewNoopMetricExporter()),
		)
		if err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}
		defer shutdownTelemetry(t, tel)

		if tel.TracerProvider() == nil {
			t.Error("expected tracer provider to be set")
		}
		if tel.MeterProvider() == nil {
			t.Error("expected meter provider to be set")
		}
	})

	t.Run("leaves providers nil when disabled", func(t *testing.T) {
		cfg := validConfig()

		tel, err := Initialize(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}
		defer shutdownTelemetry(t, tel)

		if tel.TracerProvider() != nil {
			t.Error("expected nil tracer provider")
		}
		if tel.MeterProvider() != nil {
			t.Error("expected nil meter provider")
		}
	})
}

func TestShutdown(t *testing.T) {
	t.Run("shuts down cleanly with no providers", func(t *testing.T) {
		tel := &Telemetry{}
		if err := tel.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown() failed: %v", err)
		}
	})

	t.Run("shuts down cleanly with both providers", func(t *testing.T) {
		cfg := validConfig()
		cfg.EnableTracing = true
		cfg.EnableMetrics = true

		tel, err := Initialize(context.Background(), cfg,
			WithTraceExporter(NewNoopTraceExporter()),
			WithMetricExporter(NewNoopMetricExporter()),
		)
		if err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}

		if err := tel.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown() failed: %v", err)
		}
	})
}

func TestCreateSampler(t *testing.T) {
	for _, rate := range []float64{0.0, 0.5, 1.0} {
		if s := createSampler(rate); s == nil {
			t.Errorf("createSampler(%v) returned nil", rate)
		}
	}
}

func shutdownTelemetry(t *testing.T, tel *Telemetry) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}
