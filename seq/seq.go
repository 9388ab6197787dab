package seq

import (
	"errors"
	"fmt"
)

// Sentinel errors for sequence operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrEmptySeq indicates a pop was attempted on an empty sequence.
	ErrEmptySeq = errors.New("seq: sequence is empty")
)

// Seq is a growable, slice-backed ordered sequence of T.
// The zero value is ready to use.
type Seq[T any] struct {
	items []T
}

// New returns an empty sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// Len returns the number of stored elements. O(1).
func (s *Seq[T]) Len() int {
	return len(s.items)
}

// Get returns the element at index i.
// Returns ErrIndexOutOfRange if i is outside [0, Len). O(1).
func (s *Seq[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.items))
	}

	return s.items[i], nil
}

// Set replaces the element at index i with v.
// Returns ErrIndexOutOfRange if i is outside [0, Len). O(1).
func (s *Seq[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.items))
	}
	s.items[i] = v

	return nil
}

// PushFront inserts v at the head of the sequence. O(n).
func (s *Seq[T]) PushFront(v T) {
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[1:], s.items)
	s.items[0] = v
}

// PushBack appends v at the tail of the sequence. Amortized O(1).
func (s *Seq[T]) PushBack(v T) {
	s.items = append(s.items, v)
}

// PopFront removes and returns the head element.
// Returns ErrEmptySeq if the sequence is empty. O(n).
func (s *Seq[T]) PopFront() (T, error) {
	return s.PopAt(0)
}

// PopBack removes and returns the tail element.
// Returns ErrEmptySeq if the sequence is empty. O(1).
func (s *Seq[T]) PopBack() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptySeq
	}
	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // release reference for GC
	s.items = s.items[:len(s.items)-1]

	return v, nil
}

// PopAt removes and returns the element at index i, shifting the tail left.
// Returns ErrEmptySeq on an empty sequence and ErrIndexOutOfRange for a bad
// index. O(n).
func (s *Seq[T]) PopAt(i int) (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptySeq
	}
	if i < 0 || i >= len(s.items) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.items))
	}
	v := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]

	return v, nil
}

// Clear removes all elements, keeping allocated capacity.
func (s *Seq[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}
