package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/MKhiriev/go-blog-api/internal/store"

// observability holds the tracer and metric instruments of the store.
// Both come from the global otel providers, which are no-ops unless the
// host process installs real ones.
type observability struct {
	system        string
	tracer        trace.Tracer
	queryCount    metric.Int64Counter
	queryDuration metric.Float64Histogram
	queryErrors   metric.Int64Counter
}

func newObservability(system string) *observability {
	meter := otel.Meter(instrumentationName)

	queryCount, _ := meter.Int64Counter("store.query.count",
		metric.WithDescription("Total number of repository operations"),
		metric.WithUnit("{query}"),
	)
	queryDuration, _ := meter.Float64Histogram("store.query.duration",
		metric.WithDescription("Repository operation duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000),
	)
	queryErrors, _ := meter.Int64Counter("store.query.errors",
		metric.WithDescription("Total number of failed repository operations"),
		metric.WithUnit("{error}"),
	)

	return &observability{
		system:        system,
		tracer:        otel.Tracer(instrumentationName),
		queryCount:    queryCount,
		queryDuration: queryDuration,
		queryErrors:   queryErrors,
	}
}

// start opens a span for a repository operation. The returned function must
// be called with the operation's final error.
func (o *observability) start(ctx context.Context, operation string) (context.Context, func(err error)) {
	attrs := []attribute.KeyValue{
		attribute.String("db.operation", operation),
		attribute.String("db.system", o.system),
	}

	ctx, span := o.tracer.Start(ctx, "store."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	started := time.Now()

	return ctx, func(err error) {
		set := metric.WithAttributes(attrs...)
		o.queryCount.Add(ctx, 1, set)
		o.queryDuration.Record(ctx, float64(time.Since(started).Microseconds())/1000, set)

		if err != nil {
			o.queryErrors.Add(ctx, 1, set)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
