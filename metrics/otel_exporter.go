package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *prometheus.Registry
	collector     Collector

	// OTel meters and instruments
	meter                   metric.Meter
	recordsGauge            metric.Int64ObservableGauge
	availableInstancesGauge metric.Int64ObservableGauge
	instanceStatusGauge     metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := prometheus.NewRegistry()

	// Create Prometheus exporter
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"local-library",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.recordsGauge, err = oe.meter.Int64ObservableGauge(
		"library.catalog.records",
		metric.WithDescription("Number of catalog records per kind"),
		metric.WithUnit("{records}"),
		metric.WithInt64Callback(oe.observeRecords),
	)
	if err != nil {
		return fmt.Errorf("creating records gauge: %w", err)
	}

	oe.availableInstancesGauge, err = oe.meter.Int64ObservableGauge(
		"library.catalog.instances.available",
		metric.WithDescription("Number of copies available to borrow"),
		metric.WithUnit("{copies}"),
		metric.WithInt64Callback(oe.observeAvailableInstances),
	)
	if err != nil {
		return fmt.Errorf("creating available instances gauge: %w", err)
	}

	oe.instanceStatusGauge, err = oe.meter.Int64ObservableGauge(
		"library.catalog.instances.status",
		metric.WithDescription("Number of copies by status"),
		metric.WithUnit("{copies}"),
		metric.WithInt64Callback(oe.observeInstanceStatus),
	)
	if err != nil {
		return fmt.Errorf("creating instance status gauge: %w", err)
	}

	return nil
}

func (oe *OTelExporter) observeRecords(ctx context.Context, observer metric.Int64Observer) error {
	counts, _, err := oe.collector.GetRecordCounts(ctx)
	if err != nil {
		return err
	}

	for kind, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("record.kind", kind),
		))
	}

	return nil
}

func (oe *OTelExporter) observeAvailableInstances(ctx context.Context, observer metric.Int64Observer) error {
	_, available, err := oe.collector.GetRecordCounts(ctx)
	if err != nil {
		return err
	}

	observer.Observe(available)
	return nil
}

func (oe *OTelExporter) observeInstanceStatus(ctx context.Context, observer metric.Int64Observer) error {
	statusCounts, err := oe.collector.GetInstanceStatusCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range statusCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("instance.status", status),
		))
	}

	return nil
}

// ServeHTTP returns the handler exposing the Prometheus-formatted metrics
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
