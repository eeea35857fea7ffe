package flowpipe

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoExecutor(t *testing.T) {
	var wg sync.WaitGroup
	var ran atomic.Int32

	wg.Add(10)
	for range 10 {
		GoExecutor{}.Go(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()
	require.Equal(t, int32(10), ran.Load())
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 3

	p := NewPool(workers)
	var inFlight, peak atomic.Int32

	for range 30 {
		p.Go(func() {
			n := inFlight.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			inFlight.Add(-1)
		})
	}
	p.Wait()

	require.LessOrEqual(t, peak.Load(), int32(workers))
}

func TestNewPool_MinimumOne(t *testing.T) {
	p := NewPool(0)
	done := make(chan struct{})
	p.Go(func() { close(done) })
	<-done
	p.Wait()
}
