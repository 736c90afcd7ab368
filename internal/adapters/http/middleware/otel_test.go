package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/command-engine/internal/platform/telemetry"
)

// These tests swap the global TracerProvider and do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[string]any {
	attrs := make(map[string]any)
	for _, a := range s.Attributes() {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_NamesSpanByRoute(t *testing.T) {
	exporter := setupTracer(t)

	h := routed(http.MethodPost, "/api/v1/history/redo-to/{index}",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
		middleware.OpenTelemetry(nil),
	)
	serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/history/redo-to/5", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if want := "HTTP POST /api/v1/history/redo-to/{index}"; spans[0].Name() != want {
		t.Errorf("span name = %q, want %q", spans[0].Name(), want)
	}

	attrs := spanAttrs(spans[0])
	if attrs["http.route"] != "/api/v1/history/redo-to/{index}" {
		t.Errorf("http.route = %v", attrs["http.route"])
	}
	if attrs["url.path"] != "/api/v1/history/redo-to/5" {
		t.Errorf("url.path = %v", attrs["url.path"])
	}
	if attrs["http.status_code"] != int64(http.StatusOK) {
		t.Errorf("http.status_code = %v, want 200", attrs["http.status_code"])
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.NotFoundHandler())
	serve(h, httptest.NewRequest(http.MethodGet, "/nope/123", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 || spans[0].Name() != "HTTP GET unmatched" {
		t.Fatalf("spans = %v, want one named \"HTTP GET unmatched\"", exporter.GetSpans())
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	serve(h, req)

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the incoming one", got)
	}
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/history/undo", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("span status = %v, want Error", spans[0].Status())
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := middleware.OpenTelemetry(metrics)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/commands", http.NoBody))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value("result"); ok && v.AsString() == "error" && dp.Value == 1 {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("no request counter data point with result=error")
	}
}
