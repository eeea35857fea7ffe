package flowpipe

import (
	"context"
	"fmt"
)

// Switch returns a transform that selects one of branches per run and
// applies it. The selector runs once per Apply; its index picks the branch
// the whole run flows through. A selector error, or an index with no
// matching branch, terminates the stream.
//
// Switch is convenience sugar over Compose for condition-driven
// sub-pipeline selection; it adds nothing to the composition contract.
func Switch[T any](selector func(ctx context.Context) (int, error), branches ...Transform[T, T]) Transform[T, T] {
	return TransformFunc[T, T](func(ctx context.Context, in Stream[T]) Stream[T] {
		idx, err := selector(ctx)
		if err != nil {
			go drain(in)
			return FailedStream[T](err)
		}
		if idx < 0 || idx >= len(branches) {
			go drain(in)
			return FailedStream[T](fmt.Errorf("%w %d out of range [0, %d)", ErrSwitchIndex, idx, len(branches)))
		}
		return branches[idx].Apply(ctx, in)
	})
}
