// Package stack provides the bounded history stack shared by trackers and
// aggregates.
//
// A Stack is a LIFO sequence with an optional capacity. A stack created
// with capacity C retains at most C+1 entries: the current baseline plus C
// prior states. Pushing beyond that evicts the single oldest (bottom)
// entry, so a full stack always offers exactly C pops above its baseline.
package stack

import "errors"

// ErrEmptyStack is returned by Pop and Peek when the stack holds no entries.
var ErrEmptyStack = errors.New("stack is empty")

// Unbounded disables eviction when passed to New.
const Unbounded = 0

// Stack is a generic LIFO container with oldest-first eviction.
// It is not safe for concurrent use.
type Stack[T any] struct {
	items    []T
	capacity int
}

// New creates a stack. A capacity of Unbounded (or any non-positive value)
// disables eviction; a positive capacity C bounds the stack to C+1 entries.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = Unbounded
	}
	return &Stack[T]{capacity: capacity}
}

// Push adds item on top. When the stack already holds capacity+1 entries,
// the oldest (bottom) entry is evicted first. O(1) amortized.
func (s *Stack[T]) Push(item T) {
	if s.capacity != Unbounded && len(s.items) > s.capacity {
		excess := len(s.items) - s.capacity
		s.items = s.items[excess:]
	}
	s.items = append(s.items, item)
}

// Pop removes and returns the most recent entry.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, nil
}

// Peek returns the most recent entry without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

// Clear removes all entries and releases the values they held.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Len returns the number of entries currently held.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Capacity returns the capacity the stack was created with, or Unbounded.
func (s *Stack[T]) Capacity() int {
	return s.capacity
}
