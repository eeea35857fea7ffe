package flowpipe

import "github.com/sourcegraph/conc/pool"

// Executor is a logical worker pool to which pipeline stage work is bound.
// Implementations must run each submitted task exactly once and must not
// block Go indefinitely once a worker is available.
//
// Executors are passed explicitly in Config; the engine never falls back
// to shared package-level state.
type Executor interface {
	// Go schedules task for execution.
	Go(task func())
}

// GoExecutor runs every task on its own goroutine. It is the default
// executor for Config fields left nil.
type GoExecutor struct{}

// Go starts task on a new goroutine.
func (GoExecutor) Go(task func()) {
	go task()
}

// Pool is a bounded Executor. At most n tasks run concurrently; further
// tasks queue until a worker frees up.
type Pool struct {
	p *pool.Pool
}

// NewPool returns a Pool running at most n concurrent tasks.
// n values below 1 are treated as 1.
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{p: pool.New().WithMaxGoroutines(n)}
}

// Go schedules task on the pool, blocking while n tasks are already running.
func (p *Pool) Go(task func()) {
	p.p.Go(task)
}

// Wait blocks until all scheduled tasks have finished and releases the
// pool's workers. The pool must not be reused after Wait.
func (p *Pool) Wait() {
	p.p.Wait()
}
