package channel

// FromSlice returns a channel that emits each element of s in order.
// The channel is closed after the last element.
func FromSlice[T any](s []T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)
		for _, val := range s {
			out <- val
		}
	}()

	return out
}

// FromValues returns a channel that emits each argument in order.
// The channel is closed after the last value.
func FromValues[T any](values ...T) <-chan T {
	return FromSlice(values)
}

// FromRange returns a channel that emits the integers from (inclusive)
// through to (exclusive) in ascending order. An empty range yields a
// closed channel.
func FromRange(from, to int) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)
		for i := from; i < to; i++ {
			out <- i
		}
	}()

	return out
}

// FromFunc returns a channel fed by repeated calls to handle. Generation
// stops and the channel is closed when handle returns false; the value
// returned along with false is ignored.
func FromFunc[T any](handle func() (T, bool)) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)
		for {
			val, ok := handle()
			if !ok {
				return
			}
			out <- val
		}
	}()

	return out
}
