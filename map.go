package flowpipe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map returns a transform that applies handle to each value, producing
// exactly one output per input. A handle error terminates the stream.
func Map[In, Out any](handle func(context.Context, In) (Out, error)) Transform[In, Out] {
	return FlatMap(func(ctx context.Context, in In) ([]Out, error) {
		out, err := handle(ctx, in)
		if err != nil {
			return nil, err
		}
		return []Out{out}, nil
	})
}

// Filter returns a transform that forwards values for which handle returns
// true and discards the rest. A handle error terminates the stream.
func Filter[T any](handle func(context.Context, T) (bool, error)) Transform[T, T] {
	return FlatMap(func(ctx context.Context, in T) ([]T, error) {
		ok, err := handle(ctx, in)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []T{in}, nil
	})
}

// Tap returns a value-transparent transform that calls handle for each value
// and forwards it unchanged. A handle error terminates the stream.
func Tap[T any](handle func(context.Context, T) error) Transform[T, T] {
	return FlatMap(func(ctx context.Context, in T) ([]T, error) {
		if err := handle(ctx, in); err != nil {
			return nil, err
		}
		return []T{in}, nil
	})
}

// FlatMap returns a transform that applies handle to each value, producing
// zero or more outputs per input. Outputs preserve input order. A handle
// error terminates the stream.
func FlatMap[In, Out any](handle func(context.Context, In) ([]Out, error)) Transform[In, Out] {
	return TransformFunc[In, Out](func(ctx context.Context, in Stream[In]) Stream[Out] {
		out := make(chan Item[Out])

		go func() {
			defer close(out)
			for it := range in {
				if it.Err != nil {
					send(ctx, out, Fail[Out](it.Err))
					return
				}
				res, err := handle(ctx, it.Value)
				if err != nil {
					send(ctx, out, Fail[Out](err))
					// Unblock the producer; remaining input is discarded.
					drain(in)
					return
				}
				for _, v := range res {
					if !send(ctx, out, Ok(v)) {
						drain(in)
						return
					}
				}
			}
		}()

		return out
	})
}

// MapConcurrent is like Map with n workers processing values in parallel.
// Output order is NOT preserved; use Map when ordering matters. The first
// handle error or upstream error terminates the stream and stops all
// workers. n values below 1 are treated as 1.
func MapConcurrent[In, Out any](n int, handle func(context.Context, In) (Out, error)) Transform[In, Out] {
	if n < 1 {
		n = 1
	}
	return TransformFunc[In, Out](func(ctx context.Context, in Stream[In]) Stream[Out] {
		out := make(chan Item[Out])

		go func() {
			defer close(out)
			g, gctx := errgroup.WithContext(ctx)
			for range n {
				g.Go(func() error {
					for {
						select {
						case <-gctx.Done():
							return gctx.Err()
						case it, ok := <-in:
							if !ok {
								return nil
							}
							if it.Err != nil {
								return it.Err
							}
							v, err := handle(gctx, it.Value)
							if err != nil {
								return err
							}
							select {
							case out <- Ok(v):
							case <-gctx.Done():
								return gctx.Err()
							}
						}
					}
				})
			}
			if err := g.Wait(); err != nil {
				send(ctx, out, Fail[Out](err))
				drain(in)
			}
		}()

		return out
	})
}

// send delivers it to out unless ctx is done first.
// It reports whether the item was delivered.
func send[T any](ctx context.Context, out chan<- Item[T], it Item[T]) bool {
	select {
	case out <- it:
		return true
	case <-ctx.Done():
		return false
	}
}

// drain discards the remainder of in so upstream producers blocked on a
// handoff can finish and close the stream.
func drain[T any](in Stream[T]) {
	for range in {
	}
}
