package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records pipeline metrics. It is injected into the intake
// worker; the engine packages themselves stay stateless and metric-free.
type Observability struct {
	meterProvider    *metric.MeterProvider
	meter            otelmetric.Meter
	commandCounter   otelmetric.Int64Counter
	pipelineDuration otelmetric.Float64Histogram
	followUpCounter  otelmetric.Int64Counter
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	commandCounter, _ := meter.Int64Counter(
		"commands.processed",
		otelmetric.WithDescription("Number of commands processed"),
	)

	pipelineDuration, _ := meter.Float64Histogram(
		"commands.pipeline.duration",
		otelmetric.WithDescription("Extraction-to-dispatch pipeline duration"),
		otelmetric.WithUnit("ms"),
	)

	followUpCounter, _ := meter.Int64Counter(
		"followups.generated",
		otelmetric.WithDescription("Number of follow-up actions generated"),
	)

	return &Observability{
		meterProvider:    provider,
		meter:            meter,
		commandCounter:   commandCounter,
		pipelineDuration: pipelineDuration,
		followUpCounter:  followUpCounter,
	}
}

func (o *Observability) RecordCommandProcessed(ctx context.Context, module, status string) {
	if o.commandCounter != nil {
		o.commandCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("module", module),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordPipelineDuration(ctx context.Context, duration time.Duration, status string) {
	if o.pipelineDuration != nil {
		o.pipelineDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordFollowUpsGenerated(ctx context.Context, n int, sequence string) {
	if o.followUpCounter != nil {
		o.followUpCounter.Add(ctx, int64(n), otelmetric.WithAttributes(
			attribute.String("sequence", sequence),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
