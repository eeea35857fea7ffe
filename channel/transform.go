package channel

// Transform applies handle to each value from in and forwards the result.
// The returned channel is closed after in is closed.
func Transform[In, Out any](in <-chan In, handle func(In) Out) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)
		for val := range in {
			out <- handle(val)
		}
	}()

	return out
}

// Filter forwards the values from in for which handle returns true and
// discards the rest. The returned channel is closed after in is closed.
func Filter[T any](in <-chan T, handle func(T) bool) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)
		for val := range in {
			if handle(val) {
				out <- val
			}
		}
	}()

	return out
}

// Buffer forwards in through a channel with the given capacity, decoupling
// producer and consumer up to size in-flight values. The returned channel
// is closed after in is closed.
func Buffer[T any](in <-chan T, size int) <-chan T {
	out := make(chan T, size)

	go func() {
		defer close(out)
		for val := range in {
			out <- val
		}
	}()

	return out
}
