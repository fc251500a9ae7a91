package rewind

import "github.com/dshills/rewind/stack"

// Member is the aggregate-facing surface of a tracker, independent of its
// state type. It is implemented only by [Tracker]; the unexported methods
// seal the interface to this package.
type Member interface {
	// Undo reverts the member's most recent recorded state.
	Undo() error

	// Redo reapplies the member's most recently undone state.
	Redo() error

	// CanUndo reports whether the member retains undoable history.
	CanUndo() bool

	// CanRedo reports whether the member retains redoable history.
	CanRedo() bool

	// IsChanged reports whether the member differs from its clean state.
	IsChanged() bool

	// ClearIsChangedFlag marks the member's current state as clean.
	ClearIsChangedFlag()

	bind(onRecord func()) error
	unbind()
	clearAll()
	clearUndo()
	clearRedo()
}

// Aggregator provides a single chronological undo/redo timeline over
// multiple trackers covering disjoint parts of application state. Every
// record on a member pushes that member's id onto the aggregate undo
// index, so aggregate undo replays history in exact reverse record order
// across all members.
//
// Members evict their own oldest history independently, driven by their
// own capacities, so the aggregate index can come to reference snapshots a
// member no longer holds. The aggregate reconciles this conservatively;
// see Undo.
//
// An Aggregator assumes strictly sequential use from a single goroutine.
type Aggregator struct {
	members []Member

	undoIndex *stack.Stack[int]
	redoIndex *stack.Stack[int]
}

// NewAggregator creates an aggregate over the given trackers. Each tracker
// is assigned its list position as a stable id. Fails with
// ErrAlreadyRegistered when a tracker already belongs to an aggregate, in
// which case no tracker remains bound.
func NewAggregator(members ...Member) (*Aggregator, error) {
	a := &Aggregator{
		undoIndex: stack.New[int](stack.Unbounded),
		redoIndex: stack.New[int](stack.Unbounded),
	}
	for i, m := range members {
		if err := a.AddTracker(m); err != nil {
			for _, bound := range members[:i] {
				bound.unbind()
			}
			return nil, err
		}
	}
	return a, nil
}

// AddTracker registers another tracker under the next free id. Trackers
// may be added after others have recorded history; existing index entries
// are never reordered or rewritten, and the new member participates in all
// future record, undo, and redo traffic.
func (a *Aggregator) AddTracker(m Member) error {
	id := len(a.members)
	if err := m.bind(func() { a.recorded(id) }); err != nil {
		return err
	}
	a.members = append(a.members, m)
	return nil
}

// recorded handles a member's record notification: the member id joins the
// chronological index and redo history stops being reachable.
func (a *Aggregator) recorded(id int) {
	a.undoIndex.Push(id)
	a.redoIndex.Clear()
}

// CanUndo reports whether the aggregate timeline has undoable entries.
func (a *Aggregator) CanUndo() bool {
	return canPop(a.undoIndex.Len(), indexFloor)
}

// CanRedo reports whether the aggregate timeline has redoable entries.
func (a *Aggregator) CanRedo() bool {
	return canPop(a.redoIndex.Len(), indexFloor)
}

// Undo pops the most recent record's member id, delegates the undo to that
// member, and makes the step redoable. Fails with ErrNothingToUndo when
// the timeline is empty.
//
// After delegating, the new top of the undo index is checked: if it names
// a member whose undo history is already exhausted, the aggregate cannot
// trust any remaining entry and discards its whole undo timeline, clearing
// its own undo index and every member's undo stack. This sacrifices
// still-valid history in other members for an invariant that needs no
// per-member eviction accounting: the aggregate never pops an index whose
// member cannot satisfy it. Redo stacks, aggregate and member, are left
// untouched by the truncation.
func (a *Aggregator) Undo() error {
	if err := validatePop(a.undoIndex.Len(), indexFloor, ErrNothingToUndo); err != nil {
		return err
	}

	id, err := a.undoIndex.Pop()
	if err != nil {
		return err
	}
	if err := a.members[id].Undo(); err != nil {
		// Nothing was mutated; put the entry back.
		a.undoIndex.Push(id)
		return err
	}
	a.redoIndex.Push(id)

	next, err := a.undoIndex.Peek()
	if err != nil || a.members[next].CanUndo() {
		return nil
	}

	a.undoIndex.Clear()
	for _, m := range a.members {
		m.clearUndo()
	}
	return nil
}

// Redo replays the most recently undone step on the member that produced
// it. Redo entries are only ever produced by successful undos, so no
// reconciliation is needed. Fails with ErrNothingToRedo when nothing was
// undone.
func (a *Aggregator) Redo() error {
	if err := validatePop(a.redoIndex.Len(), indexFloor, ErrNothingToRedo); err != nil {
		return err
	}

	id, err := a.redoIndex.Pop()
	if err != nil {
		return err
	}
	if err := a.members[id].Redo(); err != nil {
		a.redoIndex.Push(id)
		return err
	}
	a.undoIndex.Push(id)
	return nil
}

// ClearStacks clears both aggregate index stacks and cascades the full
// clear, fresh floor snapshots and changed-flag resets included, to every
// member.
func (a *Aggregator) ClearStacks() {
	a.undoIndex.Clear()
	a.redoIndex.Clear()
	for _, m := range a.members {
		m.clearAll()
	}
}

// ClearUndoStack clears the aggregate undo index and every member's undo
// stack. Redo history is untouched.
func (a *Aggregator) ClearUndoStack() {
	a.undoIndex.Clear()
	for _, m := range a.members {
		m.clearUndo()
	}
}

// ClearRedoStack clears the aggregate redo index and every member's redo
// stack.
func (a *Aggregator) ClearRedoStack() {
	a.redoIndex.Clear()
	for _, m := range a.members {
		m.clearRedo()
	}
}

// IsChanged reports whether any member differs from its clean state.
func (a *Aggregator) IsChanged() bool {
	for _, m := range a.members {
		if m.IsChanged() {
			return true
		}
	}
	return false
}

// ClearIsChangedFlag marks every member's current state as clean.
func (a *Aggregator) ClearIsChangedFlag() {
	for _, m := range a.members {
		m.ClearIsChangedFlag()
	}
}

// Trackers returns the number of member trackers.
func (a *Aggregator) Trackers() int {
	return len(a.members)
}
