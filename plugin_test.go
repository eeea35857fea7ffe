package flowpipe

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingHooks returns hooks that append event names to log under mu.
func recordingHooks(mu *sync.Mutex, log *[]string, name string) Hooks[int] {
	record := func(event string) {
		mu.Lock()
		defer mu.Unlock()
		*log = append(*log, name+":"+event)
	}
	return Hooks[int]{
		OnStart:   func(context.Context) { record("start") },
		OnElement: func(_ context.Context, _ int) { record("element") },
		OnError:   func(_ context.Context, _ error) { record("error") },
		OnComplete: func(_ context.Context, err error) {
			if err != nil {
				record("complete-failed")
			} else {
				record("complete")
			}
		},
	}
}

func TestHookPlugin_ValueTransparency(t *testing.T) {
	input := []int{5, 6, 7, 8}

	want, err := CollectSlice(double().Apply(context.Background(), FromSlice(input)))
	require.NoError(t, err)

	var mu sync.Mutex
	var log []string
	wrapped := NewHookPlugin[int](recordingHooks(&mu, &log, "obs")).Wrap(double())
	got, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice(input)))
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestHookPlugin_ErrorTransparency(t *testing.T) {
	boom := errors.New("boom")
	failing := Map(func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})

	var observed error
	wrapped := NewHookPlugin[int, int](Hooks[int]{
		OnError: func(_ context.Context, err error) { observed = err },
	}).Wrap(failing)

	got, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice([]int{1, 2, 3})))
	// The original error, not a replacement, reaches the consumer.
	require.Same(t, boom, err)
	require.Same(t, boom, observed)
	require.Equal(t, []int{1}, got)
}

// eventIndex returns the position of event in log, failing the test if it
// was not recorded.
func eventIndex(t *testing.T, log []string, event string) int {
	t.Helper()
	for i, e := range log {
		if e == event {
			return i
		}
	}
	t.Fatalf("event %q not recorded in %v", event, log)
	return -1
}

func TestHookPlugin_NestingOrder(t *testing.T) {
	var mu sync.Mutex
	var log []string

	inner := NewHookPlugin[int](recordingHooks(&mu, &log, "inner"))
	outer := NewHookPlugin[int](recordingHooks(&mu, &log, "outer"))

	wrapped := outer.Wrap(inner.Wrap(Identity[int]()))
	got, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice([]int{1})))
	require.NoError(t, err)
	require.Equal(t, []int{1}, got)

	require.ElementsMatch(t, []string{
		"outer:start",
		"inner:start",
		"inner:element",
		"outer:element",
		"inner:complete",
		"outer:complete",
	}, log)

	// Start runs outside-in, element hooks inside-out, completion
	// inside-out. The inner stage's completion is unordered relative to
	// the outer stage's element hook: the inner goroutine may see its
	// input close before the outer goroutine handles the last item.
	require.Less(t, eventIndex(t, log, "outer:start"), eventIndex(t, log, "inner:start"))
	require.Less(t, eventIndex(t, log, "inner:start"), eventIndex(t, log, "inner:element"))
	require.Less(t, eventIndex(t, log, "inner:element"), eventIndex(t, log, "outer:element"))
	require.Less(t, eventIndex(t, log, "inner:element"), eventIndex(t, log, "inner:complete"))
	require.Less(t, eventIndex(t, log, "inner:complete"), eventIndex(t, log, "outer:complete"))
	require.Less(t, eventIndex(t, log, "outer:element"), eventIndex(t, log, "outer:complete"))
}

func TestHookPlugin_NestingOrderOnFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := Map(func(_ context.Context, _ int) (int, error) { return 0, boom })

	var mu sync.Mutex
	var log []string
	inner := NewHookPlugin[int](recordingHooks(&mu, &log, "inner"))
	outer := NewHookPlugin[int](recordingHooks(&mu, &log, "outer"))

	_, err := CollectSlice(outer.Wrap(inner.Wrap(failing)).Apply(context.Background(), FromSlice([]int{1})))
	require.ErrorIs(t, err, boom)

	require.Equal(t, []string{
		"outer:start",
		"inner:start",
		"inner:error",
		"inner:complete-failed",
		"outer:error",
		"outer:complete-failed",
	}, log)
}

func TestHookPlugin_CompleteExactlyOnce(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input Stream[int]
	}{
		{"success", FromSlice([]int{1, 2, 3})},
		{"failure", FailedStream[int](errors.New("boom"))},
		{"empty", FromSlice[int](nil)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var completions int
			wrapped := NewHookPlugin[int, int](Hooks[int]{
				OnComplete: func(_ context.Context, _ error) { completions++ },
			}).Wrap(Identity[int]())

			_, _ = CollectSlice(wrapped.Apply(context.Background(), tc.input))
			require.Equal(t, 1, completions)
		})
	}
}

func TestApplyPlugins_FirstListedOutermost(t *testing.T) {
	var mu sync.Mutex
	var log []string

	a := NewHookPlugin[int](recordingHooks(&mu, &log, "a"))
	b := NewHookPlugin[int](recordingHooks(&mu, &log, "b"))

	wrapped := ApplyPlugins(Identity[int](), a, b)
	_, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice[int](nil)))
	require.NoError(t, err)

	require.Equal(t, []string{"a:start", "b:start", "b:complete", "a:complete"}, log)
}

func TestHookPlugin_ReusableAcrossRuns(t *testing.T) {
	var runs int
	wrapped := NewHookPlugin[int, int](Hooks[int]{
		OnComplete: func(_ context.Context, _ error) { runs++ },
	}).Wrap(addOne())

	for range 3 {
		got, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice([]int{1})))
		require.NoError(t, err)
		require.Equal(t, []int{2}, got)
	}
	require.Equal(t, 3, runs)
}
