package flowpipe

import (
	"context"
	"time"
)

// UseTiming returns a value-transparent plugin that measures the wall-clock
// duration of each run of the wrapped transform, from the start hook to
// stream termination. report receives the duration and the terminal error
// (nil on success).
func UseTiming[In, Out any](report func(d time.Duration, err error)) Plugin[In, Out] {
	return PluginFunc[In, Out](func(target Transform[In, Out]) Transform[In, Out] {
		return TransformFunc[In, Out](func(ctx context.Context, in Stream[In]) Stream[Out] {
			var started time.Time
			hooks := Hooks[Out]{
				OnStart: func(_ context.Context) {
					started = time.Now()
				},
				OnComplete: func(_ context.Context, err error) {
					report(time.Since(started), err)
				},
			}
			return NewHookPlugin[In, Out](hooks).Wrap(target).Apply(ctx, in)
		})
	})
}
