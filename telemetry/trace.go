package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer stores a tracer in the context. Trace uses it to create spans.
//
//	ctx = telemetry.WithTracer(ctx, otel.Tracer("spancheck"))
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext retrieves the tracer stored by WithTracer.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) { //nolint:ireturn
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)

	return tracer, ok && tracer != nil
}

// Trace runs call inside a span named name. Without a tracer in the context
// call simply runs. A returned error is recorded on the span and marks it failed.
func Trace(
	ctx context.Context, name string, call func(ctx context.Context) error, attrs ...attribute.KeyValue,
) error {
	tracer, found := TracerFromContext(ctx)
	if !found {
		return call(ctx)
	}

	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	err := call(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "ok")
	}

	return err
}
