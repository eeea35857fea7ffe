package flowpipe

import "context"

// Source produces the pipeline's input stream from an external origin.
// Produce is called once per engine run. An unbounded Source must watch
// ctx and close its stream when the run's context is cancelled; finite
// sources may ignore ctx and simply close after the last element.
type Source[T any] interface {
	Produce(ctx context.Context) Stream[T]
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) Stream[T]

// Produce calls f.
func (f SourceFunc[T]) Produce(ctx context.Context) Stream[T] {
	return f(ctx)
}

// Processor is the pipeline's middle stage. It has the same contract as
// Transform; any Transform is a valid Processor.
type Processor[In, Out any] = Transform[In, Out]

// Sink fully drains a stream, performing a terminal side effect.
// Consume blocks until the stream terminates and returns the stream's
// terminal error, or the sink's own write error, or nil on a clean drain.
// Output already written before a failure is not rolled back.
type Sink[T any] interface {
	Consume(ctx context.Context, in Stream[T]) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc[T any] func(ctx context.Context, in Stream[T]) error

// Consume calls f.
func (f SinkFunc[T]) Consume(ctx context.Context, in Stream[T]) error {
	return f(ctx, in)
}

// SliceSource returns a Source that emits the given values in order.
// Each run replays the full slice.
func SliceSource[T any](values ...T) Source[T] {
	return SourceFunc[T](func(_ context.Context) Stream[T] {
		return FromSlice(values)
	})
}

// CollectSink returns a Sink that appends every value to *dst.
// The slice is appended from the sink's own goroutine; do not read it
// until the run has finished.
func CollectSink[T any](dst *[]T) Sink[T] {
	return SinkFunc[T](func(_ context.Context, in Stream[T]) error {
		for it := range in {
			if it.Err != nil {
				return it.Err
			}
			*dst = append(*dst, it.Value)
		}
		return nil
	})
}

// EachSink returns a Sink that calls handle for every value. A handle error
// stops the drain and becomes the run's terminal error.
func EachSink[T any](handle func(context.Context, T) error) Sink[T] {
	return SinkFunc[T](func(ctx context.Context, in Stream[T]) error {
		for it := range in {
			if it.Err != nil {
				return it.Err
			}
			if err := handle(ctx, it.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// DiscardSink returns a Sink that drains the stream and discards all
// values, returning only the stream's terminal error.
func DiscardSink[T any]() Sink[T] {
	return SinkFunc[T](func(_ context.Context, in Stream[T]) error {
		for it := range in {
			if it.Err != nil {
				return it.Err
			}
		}
		return nil
	})
}
