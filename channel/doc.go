// Package channel provides stateless operations on plain Go channels.
//
// These are the raw building blocks under the flowpipe stream layer:
// sources ([FromSlice], [FromValues], [FromRange], [FromFunc]),
// transforms ([Transform], [Filter], [Buffer]), fan-in ([Merge]), and
// sinks ([ToSlice], [Drain]). All functions return a new channel that is
// closed once the input is exhausted; none of them modify their inputs.
//
// Unlike flowpipe streams, channels here carry no in-band error
// convention. Use this package for plumbing where failure handling is
// someone else's concern.
package channel
