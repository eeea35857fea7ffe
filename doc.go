// Package flowpipe provides composable asynchronous stream transforms and a
// three-stage pipeline engine for running them.
//
// The core abstraction is [Transform], a lazy mapping from one [Stream] to
// another. Transforms compose with [Compose] and [Chain], and cross-cutting
// behavior such as logging, metrics, and tracing is added through the
// [Plugin] mechanism without changing a transform's contract.
//
// The [Engine] runs a Source → Processor → Sink pipeline. Each stage is
// bound to its own [Executor] and stages are connected through bounded
// buffers, so a fast producer is throttled by its downstream consumer.
//
// # Quick Start
//
//	source := flowpipe.SliceSource(1, 2, 3)
//	proc := flowpipe.Map(func(_ context.Context, v int) (int, error) {
//		return v + 1, nil
//	})
//	var got []int
//	eng, err := flowpipe.New(source, proc, flowpipe.CollectSink(&got), flowpipe.Config{
//		ReadBuffer:    16,
//		ProcessBuffer: 16,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := eng.Start(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// A stream carries errors in-band: it either closes after its last value
// (success) or delivers exactly one item with a non-nil Err as its final
// element (failure). The first error from any stage terminates the whole
// run; the engine performs no retries and offers no mid-run cancellation.
//
// For raw channel plumbing without the stream error convention, see the
// channel package.
package flowpipe
