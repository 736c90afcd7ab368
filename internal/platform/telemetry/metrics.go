package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys shared by spans and metrics.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
	AttrCommandType = attribute.Key("command.type")
	AttrStack       = attribute.Key("stack")
)

// Metrics holds the service's instruments. Components accept a nil
// *Metrics and skip recording.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// EngineGateWait is the time an engine call spends queued before it
	// holds the execution gate. EngineCommandDuration starts once it does.
	EngineGateWait        metric.Float64Histogram
	EngineCommandDuration metric.Float64Histogram
	EngineCommandTotal    metric.Int64Counter
	EngineHistoryDepth    metric.Int64Gauge
}

// NewMetrics creates every instrument on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	b := &instruments{meter: mp.Meter(scope)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of calls to the render API"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Calls to the render API", "{request}"),

		EngineGateWait:        b.seconds("engine.gate.wait", "Time spent waiting for the execution gate"),
		EngineCommandDuration: b.seconds("engine.command.duration", "Time spent holding the execution gate"),
		EngineCommandTotal:    b.counter("engine.command.total", "Engine operations by outcome", "{operation}"),
		EngineHistoryDepth:    b.gauge("engine.history.depth", "Commands held by each history stack", "{command}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// instruments creates instruments on one meter and collects the errors, so
// NewMetrics can check once at the end.
type instruments struct {
	meter metric.Meter
	err   error
}

func (b *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	b.fail(name, err)
	return h
}

func (b *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.fail(name, err)
	return c
}

func (b *instruments) gauge(name, desc, unit string) metric.Int64Gauge {
	g, err := b.meter.Int64Gauge(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.fail(name, err)
	return g
}

func (b *instruments) fail(name string, err error) {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
}
