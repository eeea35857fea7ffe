package channel

import "sync"

// Merge forwards the values of all input channels into a single output
// channel. No ordering is guaranteed across inputs. The returned channel
// is closed after every input is closed.
func Merge[T any](ins ...<-chan T) <-chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(ins))
	for _, in := range ins {
		go func() {
			defer wg.Done()
			for val := range in {
				out <- val
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
