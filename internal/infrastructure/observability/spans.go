package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/julianespinel/movies"

// GetTracer returns the tracer for the movies service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartStorageSpan starts a client span around a movie table operation.
func StartStorageSpan(ctx context.Context, operation, imdbID string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("db.operation", operation),
		attribute.String("db.sql.table", "movies"),
	}
	if imdbID != "" {
		attrs = append(attrs, attribute.String("movie.imdb_id", imdbID))
	}
	return GetTracer().Start(ctx, "movies."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
