package flowpipe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/fxsml/flowpipe"

// UseTracing returns a value-transparent plugin that opens one span per run
// of the wrapped transform. The span records the element count and, on
// failure, the terminal error. A nil provider yields a no-op plugin.
func UseTracing[In, Out any](provider trace.TracerProvider, spanName string) Plugin[In, Out] {
	if provider == nil {
		provider = noop.NewTracerProvider()
	}
	tracer := provider.Tracer(tracerName)

	return PluginFunc[In, Out](func(target Transform[In, Out]) Transform[In, Out] {
		return TransformFunc[In, Out](func(ctx context.Context, in Stream[In]) Stream[Out] {
			var span trace.Span
			var elements int64
			hooks := Hooks[Out]{
				OnStart: func(ctx context.Context) {
					_, span = tracer.Start(ctx, spanName)
				},
				OnElement: func(_ context.Context, _ Out) {
					elements++
				},
				OnError: func(_ context.Context, err error) {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				},
				OnComplete: func(_ context.Context, _ error) {
					span.SetAttributes(attribute.Int64("flowpipe.elements", elements))
					span.End()
				},
			}
			return NewHookPlugin[In, Out](hooks).Wrap(target).Apply(ctx, in)
		})
	})
}
