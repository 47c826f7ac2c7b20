package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	tracer         trace.Tracer
	messageCounter otelmetric.Int64Counter
	turnDuration   otelmetric.Float64Histogram
}

// New builds the meter and tracer providers. jaegerEndpoint may be empty, in
// which case tracing is a no-op.
func New(serviceName, jaegerEndpoint string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	messageCounter, _ := meter.Int64Counter(
		"messages.processed",
		otelmetric.WithDescription("Number of chat messages processed"),
	)

	turnDuration, _ := meter.Float64Histogram(
		"messages.duration",
		otelmetric.WithDescription("Conversation turn processing duration"),
		otelmetric.WithUnit("ms"),
	)

	obs := &Observability{
		meterProvider:  provider,
		meter:          meter,
		messageCounter: messageCounter,
		turnDuration:   turnDuration,
	}

	if jaegerEndpoint != "" {
		traceExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			log.Printf("Failed to create Jaeger exporter: %v", err)
		} else {
			tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExporter))
			otel.SetTracerProvider(tp)
			obs.tracerProvider = tp
		}
	}
	obs.tracer = otel.Tracer(serviceName)

	return obs
}

// NewWithTracer builds an Observability over an existing tracer and no
// metric pipeline. Tests pair it with a recording tracer provider.
func NewWithTracer(tracer trace.Tracer) *Observability {
	return &Observability{tracer: tracer}
}

// StartTurn opens a span for one conversation turn.
func (o *Observability) StartTurn(ctx context.Context, pillar string) (context.Context, trace.Span) {
	if o.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return o.tracer.Start(ctx, "orchestrator.process_message",
		trace.WithAttributes(attribute.String("pillar", pillar)))
}

func (o *Observability) RecordMessageProcessed(ctx context.Context, pillar string) {
	if o.messageCounter != nil {
		o.messageCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("pillar", pillar),
		))
	}
}

func (o *Observability) RecordTurnDuration(ctx context.Context, duration time.Duration, pillar string) {
	if o.turnDuration != nil {
		o.turnDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("pillar", pillar),
		))
	}
}

func (o *Observability) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.meterProvider != nil {
		o.meterProvider.Shutdown(ctx)
	}
	if o.tracerProvider != nil {
		o.tracerProvider.Shutdown(ctx)
	}
}
