package channel

// ToSlice collects all values from in into a slice, blocking until in is
// closed.
func ToSlice[T any](in <-chan T) []T {
	var slice []T
	for val := range in {
		slice = append(slice, val)
	}
	return slice
}

// Drain consumes and discards all values from in. The returned channel is
// closed once in is closed and fully consumed.
func Drain[T any](in <-chan T) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for range in {
		}
	}()

	return done
}
