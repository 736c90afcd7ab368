// Package telemetry sets up OpenTelemetry tracing and metrics for the
// command engine service.
//
//	p, err := telemetry.Setup(ctx, "command-engine", telemetry.ExporterStdout, "")
//	defer p.Shutdown(ctx)
//	engine := app.NewEngine(cfg, bus, p.Metrics, logger)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrUnsupportedExporter is returned for exporter names other than
	// ExporterStdout and ExporterOTLP.
	ErrUnsupportedExporter = errors.New("unsupported exporter")

	errNoEndpoint = errors.New("otlp exporter requires an endpoint")
)

// Providers owns the SDK providers registered by Setup. The zero value is a
// disabled setup: Metrics is nil and Shutdown does nothing.
type Providers struct {
	Metrics *Metrics

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup registers global tracer and meter providers exporting to exporter
// and builds the service's instruments. Any provider created before a
// failure is shut down again.
func Setup(ctx context.Context, serviceName, exporter, endpoint string) (*Providers, error) {
	p := &Providers{}

	var err error
	if p.tracer, err = InitTracer(ctx, serviceName, exporter, endpoint); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if p.meter, err = InitMeter(ctx, serviceName, exporter, endpoint); err != nil {
		return nil, errors.Join(fmt.Errorf("init meter: %w", err), p.Shutdown(ctx))
	}
	if p.Metrics, err = NewMetrics(p.meter, serviceName); err != nil {
		return nil, errors.Join(fmt.Errorf("creating metrics: %w", err), p.Shutdown(ctx))
	}
	return p, nil
}

// Shutdown flushes and stops whichever providers were created.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTracer registers a batching TracerProvider and the W3C trace context
// and baggage propagators. The caller owns the provider's shutdown.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var spans sdktrace.SpanExporter
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			err = errNoEndpoint
			break
		}
		spans, err = otlptracehttp.New(ctx, traceOptions(endpoint)...)
	case ExporterStdout:
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter registers a MeterProvider with a periodic reader. Exporter
// selection follows InitTracer.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var metrics sdkmetric.Exporter
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			err = errNoEndpoint
			break
		}
		metrics, err = otlpmetrichttp.New(ctx, metricOptions(endpoint)...)
	case ExporterStdout:
		metrics, err = stdoutmetric.New()
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

func traceOptions(endpoint string) []otlptracehttp.Option {
	host, secure := splitEndpoint(endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func metricOptions(endpoint string) []otlpmetrichttp.Option {
	host, secure := splitEndpoint(endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}

// splitEndpoint turns "https://collector:4318" into ("collector:4318", true).
// A bare host:port is returned unchanged and treated as plain HTTP.
func splitEndpoint(endpoint string) (string, bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
