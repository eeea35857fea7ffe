package flowpipe

import "context"

// Transform maps one stream to another.
//
// Apply must be lazy: it returns a new stream immediately and must not drain
// the input before the returned stream is consumed. A Transform is
// constructed once and may be reused across multiple Apply calls; each call
// is an independent run, and no run-to-run shared mutable state is safe
// unless the Transform documents it.
//
// A Transform runs on whatever goroutines drive its streams; it performs no
// executor binding of its own. See Engine for stage binding.
type Transform[In, Out any] interface {
	// Apply returns the transformed stream. The input's terminal error, if
	// any, surfaces through the returned stream.
	Apply(ctx context.Context, in Stream[In]) Stream[Out]
}

// TransformFunc adapts a function to the Transform interface.
type TransformFunc[In, Out any] func(ctx context.Context, in Stream[In]) Stream[Out]

// Apply calls f.
func (f TransformFunc[In, Out]) Apply(ctx context.Context, in Stream[In]) Stream[Out] {
	return f(ctx, in)
}

// Identity returns the transform that forwards its input unchanged.
// It is the two-sided unit of Compose.
func Identity[T any]() Transform[T, T] {
	return TransformFunc[T, T](func(_ context.Context, in Stream[T]) Stream[T] {
		return in
	})
}

type composed[In, Mid, Out any] struct {
	a Transform[In, Mid]
	b Transform[Mid, Out]
}

func (c *composed[In, Mid, Out]) Apply(ctx context.Context, in Stream[In]) Stream[Out] {
	return c.b.Apply(ctx, c.a.Apply(ctx, in))
}

// Compose combines two transforms into one, connecting the output of a to
// the input of b. Composition is associative: chaining any number of
// transforms by repeated pairwise composition yields the same stream
// regardless of grouping.
func Compose[In, Mid, Out any](a Transform[In, Mid], b Transform[Mid, Out]) Transform[In, Out] {
	return &composed[In, Mid, Out]{a: a, b: b}
}

// Chain composes any number of same-type transforms left to right.
// Chain with no arguments returns Identity.
func Chain[T any](ts ...Transform[T, T]) Transform[T, T] {
	chained := Identity[T]()
	for _, t := range ts {
		chained = Compose(chained, t)
	}
	return chained
}
