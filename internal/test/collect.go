// Package test provides shared helpers for channel-based tests.
package test

import (
	"testing"
	"time"
)

// Collect drains ch until it closes and returns everything received.
// It fails the test if draining takes longer than timeout.
func Collect[T any](t *testing.T, ch <-chan T, timeout time.Duration) []T {
	t.Helper()

	var out []T
	deadline := time.After(timeout)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-deadline:
			t.Fatalf("timed out after %v draining channel (got %d values)", timeout, len(out))
			return nil
		}
	}
}

// Seq returns the ints 1 through n.
func Seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}
