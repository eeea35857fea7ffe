package flowpipe

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the engine's run state.
type State int32

const (
	// StateIdle means no run has started yet.
	StateIdle State = iota
	// StateRunning means a run is in flight.
	StateRunning
	// StateCompleted means the last run drained without error.
	StateCompleted
	// StateFailed means the last run terminated with an error.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Config configures an Engine. The zero value is usable: unbuffered
// handoffs, goroutine-per-task executors, no error handler, no logging.
// A Config is read-only once a run starts.
type Config struct {
	// ReadBuffer is the capacity of the buffer between source and
	// processor. 0 degenerates to a synchronous handoff. Very large
	// values approach unbounded eager buffering and defeat backpressure.
	ReadBuffer int
	// ProcessBuffer is the capacity of the buffer between processor and
	// sink. Same tradeoffs as ReadBuffer.
	ProcessBuffer int

	// ReadExecutor runs source-side production. Defaults to GoExecutor.
	ReadExecutor Executor
	// ProcessExecutor runs processor-side production. Defaults to GoExecutor.
	ProcessExecutor Executor
	// WriteExecutor runs the sink drain. Defaults to GoExecutor.
	WriteExecutor Executor

	// ErrorHandler, if set, is invoked exactly once with the terminating
	// error before Start returns it. A panic inside the handler is not
	// recovered; its behavior is implementation-defined.
	ErrorHandler func(error)

	// Logger, if set, receives run lifecycle events tagged with a
	// per-run ID.
	Logger *zerolog.Logger
}

func (c Config) parse() Config {
	if c.ReadBuffer < 0 {
		c.ReadBuffer = 0
	}
	if c.ProcessBuffer < 0 {
		c.ProcessBuffer = 0
	}
	if c.ReadExecutor == nil {
		c.ReadExecutor = GoExecutor{}
	}
	if c.ProcessExecutor == nil {
		c.ProcessExecutor = GoExecutor{}
	}
	if c.WriteExecutor == nil {
		c.WriteExecutor = GoExecutor{}
	}
	return c
}

// Engine runs a Source → Processor → Sink pipeline with bounded buffering
// between stages. Each stage is bound to its configured Executor; the only
// throttling is the backpressure of the two bounded buffers.
//
// Elements reach the sink in source order as long as the processor is
// order-preserving (Map and friends are; MapConcurrent is not).
type Engine[In, Out any] struct {
	source Source[In]
	proc   Processor[In, Out]
	sink   Sink[Out]
	cfg    Config

	state atomic.Int32
}

// New creates an Engine for the given stages. All three stages are
// required; cfg is validated and defaulted once here.
func New[In, Out any](source Source[In], proc Processor[In, Out], sink Sink[Out], cfg Config) (*Engine[In, Out], error) {
	if source == nil || proc == nil || sink == nil {
		return nil, ErrNilStage
	}
	return &Engine[In, Out]{
		source: source,
		proc:   proc,
		sink:   sink,
		cfg:    cfg.parse(),
	}, nil
}

// Start performs one pipeline run and blocks until it terminates.
//
// The source stream is pumped onto the read executor into a buffer of
// capacity ReadBuffer, the processor's output is pumped onto the process
// executor into a buffer of capacity ProcessBuffer, and the sink drains on
// the write executor. The first error from any stage terminates the run:
// the configured ErrorHandler is invoked once, the state becomes
// StateFailed, and the error is returned. A clean drain leaves the engine
// in StateCompleted and returns nil.
//
// Start returns ErrAlreadyRunning while a run is in flight. After a run
// finishes, Start may be called again for a fresh, independent run.
func (e *Engine[In, Out]) Start(ctx context.Context) error {
	if !e.toRunning() {
		return ErrAlreadyRunning
	}

	runID := uuid.NewString()
	log := e.runLogger(runID)
	log.Debug().Msg("run started")

	// Cancelling after the drain releases any stage goroutine still
	// blocked on a handoff.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	read := pump(ctx, e.cfg.ReadExecutor, e.source.Produce(ctx), e.cfg.ReadBuffer)
	write := pump(ctx, e.cfg.ProcessExecutor, e.proc.Apply(ctx, read), e.cfg.ProcessBuffer)

	done := make(chan error, 1)
	e.cfg.WriteExecutor.Go(func() {
		done <- e.sink.Consume(ctx, write)
	})

	if err := <-done; err != nil {
		e.state.Store(int32(StateFailed))
		log.Error().Err(err).Msg("run failed")
		if e.cfg.ErrorHandler != nil {
			e.cfg.ErrorHandler(err)
		}
		return err
	}
	e.state.Store(int32(StateCompleted))
	log.Debug().Msg("run completed")
	return nil
}

// Status reports the engine's current state. It is safe to call from any
// goroutine, including while a run is in flight.
func (e *Engine[In, Out]) Status() State {
	return State(e.state.Load())
}

// Stop is accepted but has no effect on an in-flight run. The engine
// offers no first-class cancellation; callers who need to abort a run can
// cancel the context passed to Start's stages externally, which surfaces
// as an error from whichever stage was suspended.
func (e *Engine[In, Out]) Stop() {}

func (e *Engine[In, Out]) toRunning() bool {
	for {
		s := e.state.Load()
		if State(s) == StateRunning {
			return false
		}
		if e.state.CompareAndSwap(s, int32(StateRunning)) {
			return true
		}
	}
}

func (e *Engine[In, Out]) runLogger(runID string) zerolog.Logger {
	if e.cfg.Logger == nil {
		return zerolog.Nop()
	}
	return e.cfg.Logger.With().Str("run_id", runID).Logger()
}

// pump forwards in onto a buffered channel, with the forwarding task bound
// to exec. The executor binding happens before the buffer, so the stage's
// executor absorbs the queuing latency of its own downstream buffer.
func pump[T any](ctx context.Context, exec Executor, in Stream[T], size int) Stream[T] {
	out := make(chan Item[T], size)
	exec.Go(func() {
		defer close(out)
		for it := range in {
			if !send(ctx, out, it) {
				drain(in)
				return
			}
		}
	})
	return out
}
