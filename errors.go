package rewind

import "errors"

// Sentinel errors for tracker and aggregate operations.
var (
	// ErrNothingToUndo is returned when undo is requested and no state
	// older than the current one is retained.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned when redo is requested and no undone
	// state is available to reapply.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrOwnedByAggregator is returned when a stack-clearing method is
	// called directly on a tracker registered in an aggregate.
	ErrOwnedByAggregator = errors.New("tracker is owned by an aggregator; use the corresponding clear method on the aggregator instead")

	// ErrAlreadyRegistered is returned when a tracker is added to an
	// aggregate while already registered in one.
	ErrAlreadyRegistered = errors.New("tracker is already registered in an aggregator")
)
