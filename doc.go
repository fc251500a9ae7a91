// Package rewind provides memento-based undo/redo over arbitrary mutable
// state, without snapshotting the whole application on every change.
//
// A [Tracker] watches one piece of state through a caller-supplied
// capture/restore pair and keeps a bounded stack of deep-copy snapshots.
// An [Aggregator] combines trackers covering disjoint parts of state into a
// single chronological undo/redo timeline.
//
// # Trackers
//
// A tracker is built from two callbacks: capture returns a deep copy of the
// tracked state, restore copies a snapshot back into it. Construction
// immediately captures the floor snapshot, so a tracker always knows the
// state it started from:
//
//	doc := "hello"
//	tracker := rewind.NewTracker(
//	    func() string { return doc },
//	    func(s string) { doc = s },
//	    rewind.WithCapacity(100),
//	)
//
//	doc = "hello world"
//	tracker.Record()
//
//	tracker.Undo() // doc == "hello"
//	tracker.Redo() // doc == "hello world"
//
// With a capacity of C, recording beyond C prior states evicts the oldest
// one; exactly C undo steps stay available once the history is full. The
// floor snapshot itself is never popped.
//
// # Tags
//
// [Tracker.RecordTagged] attaches an opaque label to a snapshot. The label
// is surfaced exactly once per undo or redo, through listeners registered
// with [Tracker.OnStateSet], carrying the tag of the snapshot that crossed
// the undo/redo boundary.
//
// # Aggregates
//
// An [Aggregator] subscribes to its members' record notifications and keeps
// its own chronological index of which tracker recorded when. Aggregate
// undo replays history in exact reverse record order across all members,
// regardless of how state is partitioned.
//
// Members evict their oldest history independently, so the aggregate index
// can outlive the snapshots it refers to. The aggregate resolves this
// conservatively: as soon as the next index entry names a member whose undo
// history is exhausted, the entire aggregate undo timeline is discarded
// together with every member's undo stack. Redo history survives the
// truncation. See [Aggregator.Undo].
//
// Trackers registered in an aggregate refuse direct stack-clearing calls
// with [ErrOwnedByAggregator]; use the corresponding method on the owning
// aggregate, which cascades to every member.
//
// # Concurrency
//
// The package assumes strictly sequential use from a single goroutine.
// Notifications are delivered synchronously within the call that raised
// them; handlers must not re-enter mutating operations on the tracker or
// aggregate that is notifying them.
package rewind
