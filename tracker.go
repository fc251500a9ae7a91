package rewind

import "github.com/dshills/rewind/stack"

// CaptureFunc returns a deep copy of the tracked state. The returned value
// must hold no live aliasing with the state itself; the tracker cannot
// detect a violation, but every invariant in this package depends on it.
type CaptureFunc[S any] func() S

// RestoreFunc copies value back into the tracked state. It must not retain
// a reference to value, for the same reason.
type RestoreFunc[S any] func(value S)

// TrackerOption configures a Tracker at construction.
type TrackerOption func(*trackerConfig)

type trackerConfig struct {
	capacity int
}

// WithCapacity bounds the undo history to capacity prior states. Once the
// history is full, recording evicts the oldest retained state, and exactly
// capacity undo operations stay available. Zero or negative leaves the
// history unbounded.
func WithCapacity(capacity int) TrackerOption {
	return func(c *trackerConfig) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// snapshot pairs a captured state value with the tag supplied at record
// time. Snapshots are owned exclusively by the stack holding them.
type snapshot[S any] struct {
	value S
	tag   any
}

// Tracker provides memento undo/redo over one piece of application state.
// Construction captures the floor snapshot, which is never popped: a
// tracker always retains the state it would reach by undoing everything.
//
// A Tracker assumes strictly sequential use from a single goroutine.
type Tracker[S any] struct {
	capture CaptureFunc[S]
	restore RestoreFunc[S]

	undoStack *stack.Stack[snapshot[S]]
	redoStack *stack.Stack[snapshot[S]]

	changed bool
	// cleanDepth is the undo depth at which the tracker is considered
	// unchanged; -1 when that depth was discarded by a clear.
	cleanDepth int

	owned    bool
	onRecord func()
	stateSet notifier[any]
}

// NewTracker creates a tracker over the state reached through capture and
// restore, and immediately captures the current state as the untagged
// floor snapshot.
func NewTracker[S any](capture CaptureFunc[S], restore RestoreFunc[S], opts ...TrackerOption) *Tracker[S] {
	var cfg trackerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tracker[S]{
		capture:   capture,
		restore:   restore,
		undoStack: stack.New[snapshot[S]](cfg.capacity),
		redoStack: stack.New[snapshot[S]](stack.Unbounded),
	}
	t.pushFloor()
	t.cleanDepth = t.undoStack.Len()
	return t
}

// pushFloor captures the live state as the untagged baseline entry.
func (t *Tracker[S]) pushFloor() {
	t.undoStack.Push(snapshot[S]{value: t.capture()})
}

// Record captures the current state as a new undo entry with no tag.
func (t *Tracker[S]) Record() {
	t.RecordTagged(nil)
}

// RecordTagged captures the current state with an opaque tag. The tag is
// surfaced again through StateSet listeners when this entry later crosses
// the undo/redo boundary. Recording discards all redo history, both here
// and in the owning aggregate, if any.
func (t *Tracker[S]) RecordTagged(tag any) {
	t.undoStack.Push(snapshot[S]{value: t.capture(), tag: tag})
	t.redoStack.Clear()
	t.changed = true
	if t.onRecord != nil {
		t.onRecord()
	}
}

// CanUndo reports whether at least one state older than the current one is
// retained above the floor.
func (t *Tracker[S]) CanUndo() bool {
	return canPop(t.undoStack.Len(), undoFloor)
}

// CanRedo reports whether any undone state can be reapplied.
func (t *Tracker[S]) CanRedo() bool {
	return canPop(t.redoStack.Len(), redoFloor)
}

// UndoCount returns the number of undo steps currently available.
func (t *Tracker[S]) UndoCount() int {
	return t.undoStack.Len() - undoFloor
}

// RedoCount returns the number of redo steps currently available.
func (t *Tracker[S]) RedoCount() int {
	return t.redoStack.Len()
}

// Undo moves the most recent snapshot onto the redo stack and restores the
// state that preceded it. StateSet listeners receive the tag of the
// snapshot that was undone, not of the destination state. Fails with
// ErrNothingToUndo when only the floor remains.
func (t *Tracker[S]) Undo() error {
	if err := validatePop(t.undoStack.Len(), undoFloor, ErrNothingToUndo); err != nil {
		return err
	}

	top, err := t.undoStack.Pop()
	if err != nil {
		return err
	}
	t.redoStack.Push(top)

	prev, err := t.undoStack.Peek()
	if err != nil {
		return err
	}
	t.restore(prev.value)

	t.updateChanged()
	t.stateSet.emit(top.tag)
	return nil
}

// Redo reapplies the most recently undone snapshot, moving it back onto
// the undo stack. Fails with ErrNothingToRedo when nothing was undone.
func (t *Tracker[S]) Redo() error {
	if err := validatePop(t.redoStack.Len(), redoFloor, ErrNothingToRedo); err != nil {
		return err
	}

	top, err := t.redoStack.Pop()
	if err != nil {
		return err
	}
	t.undoStack.Push(top)
	t.restore(top.value)

	t.updateChanged()
	t.stateSet.emit(top.tag)
	return nil
}

// updateChanged re-derives the changed flag after undo/redo lands on a new
// depth. The tracker is clean only when it sits exactly at the depth
// recorded by the last flag clear.
func (t *Tracker[S]) updateChanged() {
	t.changed = t.undoStack.Len() != t.cleanDepth
}

// IsChanged reports whether the current state differs from the state at
// construction or the last flag clear.
func (t *Tracker[S]) IsChanged() bool {
	return t.changed
}

// ClearIsChangedFlag marks the current state as the clean reference point
// without touching either stack.
func (t *Tracker[S]) ClearIsChangedFlag() {
	t.changed = false
	t.cleanDepth = t.undoStack.Len()
}

// OnStateSet registers a listener for undo/redo transitions. Listeners run
// synchronously in registration order within the Undo or Redo call.
func (t *Tracker[S]) OnStateSet(fn StateSetFunc) {
	t.stateSet.add(fn)
}

// ClearStacks discards all undo and redo history, resets the changed flag,
// and captures a fresh floor snapshot of the live state. Fails with
// ErrOwnedByAggregator on trackers registered in an aggregate.
func (t *Tracker[S]) ClearStacks() error {
	if t.owned {
		return ErrOwnedByAggregator
	}
	t.clearAll()
	return nil
}

// ClearUndoStack discards undo history and re-captures the floor, keeping
// the undo stack non-empty. Fails with ErrOwnedByAggregator on trackers
// registered in an aggregate.
func (t *Tracker[S]) ClearUndoStack() error {
	if t.owned {
		return ErrOwnedByAggregator
	}
	t.clearUndo()
	return nil
}

// ClearRedoStack discards redo history. Fails with ErrOwnedByAggregator on
// trackers registered in an aggregate.
func (t *Tracker[S]) ClearRedoStack() error {
	if t.owned {
		return ErrOwnedByAggregator
	}
	t.clearRedo()
	return nil
}

func (t *Tracker[S]) clearAll() {
	t.undoStack.Clear()
	t.redoStack.Clear()
	t.pushFloor()
	t.changed = false
	t.cleanDepth = t.undoStack.Len()
}

func (t *Tracker[S]) clearUndo() {
	t.undoStack.Clear()
	t.pushFloor()
	if t.changed {
		// The depth the flag was cleared at no longer exists; the tracker
		// can only become clean again through another flag clear.
		t.cleanDepth = -1
	} else {
		t.cleanDepth = t.undoStack.Len()
	}
}

func (t *Tracker[S]) clearRedo() {
	t.redoStack.Clear()
}

// bind registers the tracker with an owning aggregate. The record hook is
// invoked synchronously at the end of every Record/RecordTagged call.
func (t *Tracker[S]) bind(onRecord func()) error {
	if t.owned {
		return ErrAlreadyRegistered
	}
	t.owned = true
	t.onRecord = onRecord
	return nil
}

// unbind releases aggregate ownership. Used only to roll back a partially
// constructed aggregate.
func (t *Tracker[S]) unbind() {
	t.owned = false
	t.onRecord = nil
}
