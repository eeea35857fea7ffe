package flowpipe

import "errors"

var (
	// ErrAlreadyRunning is returned by Start when a run is in flight.
	ErrAlreadyRunning = errors.New("flowpipe: engine already running")

	// ErrNilStage is returned by New when a stage is nil.
	ErrNilStage = errors.New("flowpipe: nil pipeline stage")

	// ErrSwitchIndex is the terminal error of a Switch whose selector
	// returned an index with no matching branch.
	ErrSwitchIndex = errors.New("flowpipe: switch index")
)
