package flowpipe

import "context"

// Plugin wraps a Transform with cross-cutting behavior while preserving its
// contract. Purely observational plugins must be value-transparent (every
// element passes through unchanged) and error-transparent (the original
// error is re-emitted after observation).
type Plugin[In, Out any] interface {
	Wrap(target Transform[In, Out]) Transform[In, Out]
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc[In, Out any] func(target Transform[In, Out]) Transform[In, Out]

// Wrap calls f.
func (f PluginFunc[In, Out]) Wrap(target Transform[In, Out]) Transform[In, Out] {
	return f(target)
}

// ApplyPlugins wraps target with the given plugins. Plugins are applied in
// reverse order so that the first listed plugin is the outermost wrapper:
// for plugins A, B, C, hook order on start is A, B, C, then the target.
func ApplyPlugins[In, Out any](target Transform[In, Out], plugins ...Plugin[In, Out]) Transform[In, Out] {
	for i := len(plugins) - 1; i >= 0; i-- {
		target = plugins[i].Wrap(target)
	}
	return target
}

// Hooks holds the lifecycle callbacks of a hook plugin. Any callback may be
// nil. Callbacks run on the goroutine driving the wrapped stream, so a
// callback that blocks serializes the pipeline.
type Hooks[Out any] struct {
	// OnStart runs before the first element is requested from the target.
	OnStart func(ctx context.Context)
	// OnElement runs for each value produced by the target, before the
	// value is forwarded downstream.
	OnElement func(ctx context.Context, v Out)
	// OnError runs when the target's stream terminates with an error,
	// before the original error is re-emitted downstream.
	OnError func(ctx context.Context, err error)
	// OnComplete runs exactly once when the stream terminates, with the
	// terminal error (nil on success). For a failed stream it runs after
	// OnError and before the error item is forwarded, so teardown of
	// nested plugins is observed inner-first.
	OnComplete func(ctx context.Context, err error)
}

// NewHookPlugin returns a value- and error-transparent plugin that invokes
// the given hooks around the wrapped transform.
//
// Nesting: for outer.Wrap(inner.Wrap(target)), the outer OnStart runs
// before the inner OnStart, and the inner OnError/OnComplete run before the
// outer ones.
func NewHookPlugin[In, Out any](hooks Hooks[Out]) Plugin[In, Out] {
	return PluginFunc[In, Out](func(target Transform[In, Out]) Transform[In, Out] {
		return TransformFunc[In, Out](func(ctx context.Context, in Stream[In]) Stream[Out] {
			out := make(chan Item[Out])

			go func() {
				defer close(out)
				if hooks.OnStart != nil {
					hooks.OnStart(ctx)
				}
				inner := target.Apply(ctx, in)
				for it := range inner {
					if it.Err != nil {
						if hooks.OnError != nil {
							hooks.OnError(ctx, it.Err)
						}
						if hooks.OnComplete != nil {
							hooks.OnComplete(ctx, it.Err)
						}
						send(ctx, out, it)
						return
					}
					if hooks.OnElement != nil {
						hooks.OnElement(ctx, it.Value)
					}
					if !send(ctx, out, it) {
						drain(inner)
						return
					}
				}
				if hooks.OnComplete != nil {
					hooks.OnComplete(ctx, nil)
				}
			}()

			return out
		})
	})
}
