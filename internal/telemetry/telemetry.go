package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/bigrusstattoo/studio/internal/config"
)

// Telemetry holds the tracer provider and tracer for the service.
// When tracing is disabled it carries a no-op tracer.
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
}

// Init initializes OpenTelemetry tracing with the given configuration.
func Init(ctx context.Context, cfg *config.OTelConfig, version string) (*Telemetry, error) {
	if cfg == nil || !cfg.Enabled {
		serviceName := "studio-api"
		if cfg != nil && cfg.ServiceName != "" {
			serviceName = cfg.ServiceName
		}
		return &Telemetry{tracer: otel.Tracer(serviceName)}, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.CollectorAddr),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Telemetry{
		tracerProvider: tracerProvider,
		tracer:         tracerProvider.Tracer(cfg.ServiceName),
	}, nil
}

// Tracer returns the service tracer
func (t *Telemetry) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes and stops the tracer provider
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.tracerProvider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return t.tracerProvider.Shutdown(ctx)
}
