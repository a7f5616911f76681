package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/careloop/synthgen/internal/domain/entities"
)

// Metrics holds the generation run metrics.
type Metrics struct {
	RowsGenerated metric.Int64Counter
	RunDuration   metric.Float64Histogram
}

// Setup initializes the OpenTelemetry meter provider with an OTLP gRPC
// exporter and returns a shutdown function.
func Setup(ctx context.Context, serviceName, serviceVersion, endpoint string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

// InitMetrics initializes the run metrics on the global meter.
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/careloop/synthgen")

	rowsGenerated, err := meter.Int64Counter(
		"synthgen.rows.generated",
		metric.WithDescription("Number of rows generated, by table"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"synthgen.run.duration",
		metric.WithDescription("Generation run duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RowsGenerated: rowsGenerated,
		RunDuration:   runDuration,
	}, nil
}

// RecordRun records the outcome of one generation run.
func (m *Metrics) RecordRun(ctx context.Context, summary entities.Summary, elapsed time.Duration) {
	for table, count := range summary.RowCounts {
		m.RowsGenerated.Add(ctx, int64(count),
			metric.WithAttributes(attribute.String("table", table)))
	}
	m.RunDuration.Record(ctx, float64(elapsed.Milliseconds()))
}
