package rewind

// Pop preconditions shared by trackers and aggregates. A tracker's undo
// stack keeps its floor snapshot (threshold 1); redo stacks and the
// aggregate index stacks are fully consumable (threshold 0).
const (
	undoFloor  = 1
	redoFloor  = 0
	indexFloor = 0
)

// canPop reports whether a stack holding n entries can be popped without
// dropping below floor.
func canPop(n, floor int) bool {
	return n > floor
}

// validatePop returns unavailable when a stack holding n entries cannot be
// popped past floor, nil otherwise.
func validatePop(n, floor int, unavailable error) error {
	if canPop(n, floor) {
		return nil
	}
	return unavailable
}
