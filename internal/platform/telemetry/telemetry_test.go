package telemetry_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/command-engine/internal/platform/telemetry"
)

// Setup and Init* replace the global providers, so these tests do not run
// in parallel with each other.

func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, "command-engine", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Metrics == nil {
		t.Fatal("Setup() left Metrics nil")
	}
	if fields := otel.GetTextMapPropagator().Fields(); !slices.Contains(fields, "traceparent") || !slices.Contains(fields, "baggage") {
		t.Errorf("propagator fields = %v, want traceparent and baggage", fields)
	}
	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestSetup_OTLP(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, "command-engine", telemetry.ExporterOTLP, "http://localhost:4318")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	// No collector is listening, so the final flush may fail.
	_ = p.Shutdown(ctx)
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		exporter    string
		endpoint    string
		unsupported bool
	}{
		{name: "unknown exporter", exporter: "jaeger", unsupported: true},
		{name: "empty exporter", exporter: "", unsupported: true},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := telemetry.Setup(context.Background(), "command-engine", tt.exporter, tt.endpoint)
			if err == nil {
				t.Fatalf("Setup() = %+v, want error", p)
			}
			if got := errors.Is(err, telemetry.ErrUnsupportedExporter); got != tt.unsupported {
				t.Errorf("errors.Is(ErrUnsupportedExporter) = %v, want %v (err: %v)", got, tt.unsupported, err)
			}
		})
	}
}

func TestInitMeter_UnsupportedExporter(t *testing.T) {
	_, err := telemetry.InitMeter(context.Background(), "command-engine", "prometheus", "")
	if !errors.Is(err, telemetry.ErrUnsupportedExporter) {
		t.Errorf("InitMeter() error = %v, want ErrUnsupportedExporter", err)
	}
}

func TestProviders_ZeroValueShutdown(t *testing.T) {
	t.Parallel()

	var p telemetry.Providers
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on disabled providers = %v, want nil", err)
	}
}

func TestNewMetrics_RecordsUnderStableNames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "command-engine")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	undo := metric.WithAttributes(telemetry.AttrOperation.String("undo"))
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.2)
	m.ClientRequestTotal.Add(ctx, 1)
	m.EngineGateWait.Record(ctx, 0.001, undo)
	m.EngineCommandDuration.Record(ctx, 0.003, undo)
	m.EngineCommandTotal.Add(ctx, 1, undo)
	m.EngineHistoryDepth.Record(ctx, 4, metric.WithAttributes(telemetry.AttrStack.String("undo")))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var names []string
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != "command-engine" {
			t.Errorf("scope = %q, want command-engine", sm.Scope.Name)
		}
		for _, md := range sm.Metrics {
			names = append(names, md.Name)
		}
	}

	for _, want := range []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"engine.gate.wait",
		"engine.command.duration",
		"engine.command.total",
		"engine.history.depth",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("collected %v, missing %q", names, want)
		}
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "command-engine")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	if m.EngineGateWait == nil || m.EngineHistoryDepth == nil {
		t.Errorf("NewMetrics() = %+v, want every instrument set", m)
	}
}
