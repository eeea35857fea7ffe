package flowpipe

import (
	"github.com/fxsml/flowpipe/channel"
)

// Item carries a single stream element or a terminal error.
type Item[T any] struct {
	Value T
	Err   error
}

// Stream is an ordered, potentially unbounded sequence of items.
//
// A stream terminates in one of two ways: the channel closes after the last
// value (success), or the producer delivers exactly one item with a non-nil
// Err as the final element and then closes (failure). Producers must stop
// after emitting an error item; consumers must treat an error item as
// terminal and stop reading.
type Stream[T any] = <-chan Item[T]

// Ok wraps a value in an Item.
func Ok[T any](v T) Item[T] {
	return Item[T]{Value: v}
}

// Fail wraps an error in a terminal Item.
func Fail[T any](err error) Item[T] {
	return Item[T]{Err: err}
}

// Emit returns a stream that delivers the given values in order and closes.
func Emit[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// FromSlice returns a stream that delivers each element of s in order and closes.
func FromSlice[T any](s []T) Stream[T] {
	return channel.Transform(channel.FromSlice(s), Ok[T])
}

// FromRange returns a stream that delivers the integers from (inclusive)
// up to to (exclusive) and closes.
func FromRange(from, to int) Stream[int] {
	return channel.Transform(channel.FromRange(from, to), Ok[int])
}

// FromFunc returns a stream fed by repeated calls to fn.
// Generation stops when fn returns false; the value returned along
// with false is ignored.
func FromFunc[T any](fn func() (T, bool)) Stream[T] {
	return channel.Transform(channel.FromFunc(fn), Ok[T])
}

// FailedStream returns a stream that delivers err as its only item.
func FailedStream[T any](err error) Stream[T] {
	out := make(chan Item[T], 1)
	out <- Fail[T](err)
	close(out)
	return out
}

// CollectSlice drains in, returning the collected values and the stream's
// terminal error, if any. It blocks until the stream terminates.
func CollectSlice[T any](in Stream[T]) ([]T, error) {
	var values []T
	for it := range in {
		if it.Err != nil {
			return values, it.Err
		}
		values = append(values, it.Value)
	}
	return values, nil
}
