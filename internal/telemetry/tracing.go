package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type ShutdownFunc func(ctx context.Context) error

// Setup installs a global tracer provider exporting over OTLP/HTTP. Without an
// exporter endpoint tracing stays on the default no-op provider.
func Setup(ctx context.Context, cfg config.Otel, version string) (ShutdownFunc, error) {

	if cfg.ExporterEndpoint == "" {
		slog.Info("Tracing disabled, no exporter endpoint configured")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(version),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplerRatio))),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	slog.Info("Tracing enabled",
		slog.String("endpoint", cfg.ExporterEndpoint),
		slog.String("service", cfg.ServiceName),
		slog.Float64("sampler_ratio", cfg.SamplerRatio),
	)

	return provider.Shutdown, nil
}
