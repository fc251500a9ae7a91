package stack

import (
	"errors"
	"testing"
)

func TestPushPopOrder(t *testing.T) {
	s := New[int](Unbounded)
	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != want {
			t.Errorf("Pop = %d, want %d", got, want)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	s := New[string](Unbounded)
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Pop error = %v, want ErrEmptyStack", err)
	}
}

func TestPeekEmpty(t *testing.T) {
	s := New[string](Unbounded)
	if _, err := s.Peek(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Peek error = %v, want ErrEmptyStack", err)
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	s := New[int](Unbounded)
	s.Push(7)

	got, err := s.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if got != 7 {
		t.Errorf("Peek = %d, want 7", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestBoundedEvictsOldest(t *testing.T) {
	// Capacity 3 retains the baseline plus 3 prior states.
	s := New[int](3)
	for i := 1; i <= 6; i++ {
		s.Push(i)
	}

	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	// The two oldest entries were evicted; recency order is intact.
	for _, want := range []int{6, 5, 4, 3} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != want {
			t.Errorf("Pop = %d, want %d", got, want)
		}
	}
}

func TestUnboundedNeverEvicts(t *testing.T) {
	s := New[int](Unbounded)
	for i := 0; i < 1000; i++ {
		s.Push(i)
	}
	if s.Len() != 1000 {
		t.Errorf("Len = %d, want 1000", s.Len())
	}
}

func TestNegativeCapacityIsUnbounded(t *testing.T) {
	s := New[int](-5)
	if s.Capacity() != Unbounded {
		t.Errorf("Capacity = %d, want Unbounded", s.Capacity())
	}
}

func TestClear(t *testing.T) {
	s := New[int](2)
	s.Push(1)
	s.Push(2)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Pop after Clear = %v, want ErrEmptyStack", err)
	}
	// Eviction still applies after a clear.
	for i := 1; i <= 4; i++ {
		s.Push(i)
	}
	if s.Len() != 3 {
		t.Errorf("Len after refill = %d, want 3", s.Len())
	}
}
