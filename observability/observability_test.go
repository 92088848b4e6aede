package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("recordkit")
	if cfg.ServiceName != "recordkit" {
		t.Errorf("service name = %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("endpoint = %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("sample rate = %v", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("recordkit")
	if cfg.Interval != 15*time.Second {
		t.Errorf("interval = %v", cfg.Interval)
	}
	if !cfg.Insecure {
		t.Error("development default should be insecure")
	}
}

func TestNewMetricsOnNoopMeter(t *testing.T) {
	// The global provider is a no-op until InitMeter runs; instrument
	// creation and recording must still work.
	m, err := NewMetrics(otel.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	m.RecordOperation(context.Background(), "sort_by_name", 5, 10*time.Millisecond, nil)
	m.RecordOperation(context.Background(), "price_range", 0, time.Millisecond, errors.New("bad range"))
}

func TestStartSpanWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.op")
	if ctx == nil || span == nil {
		t.Fatal("expected usable context and span")
	}
	SetSpanError(ctx, errors.New("recorded"))
	span.End()
}
